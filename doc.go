/*
Package scribe writes plain text into pages of a block-based document workspace.

An agent (or a human on the command line) supplies a title and some text; scribe
turns it into the workspace's block format, sends it to the remote API, and
returns a uniform result. Created pages are remembered in an in-memory registry
for the lifetime of the process.

# Surfaces

  - MCP: create_page and update_page tools over stdio or SSE, plus a scribe://pages resource.
  - HTTP: POST /pages, PATCH /pages/{pageID}, GET /pages, /health and /metrics.
  - CLI: scribe create and scribe update, with a --dry-run preview.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/scribe"
		"github.com/aretw0/scribe/pkg/operations"
	)

	func main() {
		cfg, err := scribe.LoadConfig("")
		if err != nil {
			log.Fatal(err)
		}

		app, err := scribe.New(cfg)
		if err != nil {
			log.Fatal(err)
		}

		res := app.Service.CreatePage(context.Background(), operations.CreatePageInput{
			Title: "Meeting notes",
			Data:  "Decisions go here.",
		})
		log.Println(res.StatusCode, res.ID)
	}
*/
package scribe
