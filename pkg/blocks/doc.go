/*
Package blocks translates plain text into the workspace's block tree and
assembles the request bodies sent to it.

The package is pure: no I/O, no validation. Length limits are enforced once on
the raw input by the operations layer before any block is built.

	body := blocks.Paragraph("Hello world")
	req := blocks.ComposeCreate(parentID, "Notes", "", body)

	heading, ok := blocks.HeadingIfPresent("  ")
	// ok == false, heading is skipped
	app := blocks.ComposeAppend("Section", "Body text")
*/
package blocks
