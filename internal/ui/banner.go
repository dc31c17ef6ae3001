package ui

// Banner is printed by the version command
const Banner = `
╔══════════════════════════════════════════════════════════════════════════════╗
║                                                                              ║
║   ████████╗██╗████████╗ █████╗ ███╗   ██╗       ██████╗██╗     ██╗           ║
║   ╚══██╔══╝██║╚══██╔══╝██╔══██╗████╗  ██║      ██╔════╝██║     ██║           ║
║      ██║   ██║   ██║   ███████║██╔██╗ ██║█████╗██║     ██║     ██║           ║
║      ██║   ██║   ██║   ██╔══██║██║╚██╗██║╚════╝██║     ██║     ██║           ║
║      ██║   ██║   ██║   ██║  ██║██║ ╚████║      ╚██████╗███████╗██║           ║
║      ╚═╝   ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝       ╚═════╝╚══════╝╚═╝           ║
║                                                                              ║
║                    ⚡ THE OPERATOR CONSOLE ⚡                                 ║
║                         v1.0.0 | L5 Interface                                ║
║                                                                              ║
╚══════════════════════════════════════════════════════════════════════════════╝
`

// PrintBanner writes the banner in the accent color
func (c *Console) PrintBanner() {
	c.Printf("%s\n", AccentStyle.Render(Banner))
}
