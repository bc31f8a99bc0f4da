// Package color provides the terminal styles used to present diagnostics.
//
// Warnings are rendered in yellow and errors in bold red, adapting to dark
// and light terminal backgrounds. lipgloss detects terminal capabilities,
// so output that is not a terminal, or a terminal with NO_COLOR set, is
// written as plain text.
//
// # Usage Example
//
//	color.Initialize(lipgloss.HasDarkBackground())
//	fmt.Fprintln(os.Stderr, color.Warning("option `all_policies` is ignored"))
package color
