package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `termstate is a local cache of one translation-management account: Projects → Terms → Translations.

Core concepts:
- Project: owns terms, enabled locales, labels, tags, members, invites and API clients. One project is selected at a time.
- Term: a source string (value + optional context).
- Translation: the value of a term in one locale. Missing translations read as "".
- Reference locale: a second locale shown next to the working one; remembered per project.

Default workflow:
1) login (the session survives restarts until the token expires).
2) list_projects, then select_project(project_id). Switching projects drops everything cached for the previous one.
3) translation_view(locale) to see terms with their values; filter with filter_untranslated, search or label_ids.
4) update_translation / create_term / delete_term to change data. Stats refresh after term changes; call project_stats to read them.
5) logout when done.

Errors carry a code (UNAUTHENTICATED, NO_PROJECT, NOT_FOUND, ALREADY_EXISTS, PLAN_LIMIT, UNAVAILABLE, INVALID_INPUT) and a recovery hint.

Docs:
- termstate://docs/index
- termstate://docs/concepts
- termstate://docs/workflows/translating
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "termstate://docs/index",
		Name:        "docs_index",
		Title:       "termstate docs index",
		Description: "Entry point: what the tools do and what to read next.",
		Content: `# termstate: Agent Docs Index

## Quick start

1. ` + "`login`" + ` with email and password.
2. ` + "`list_projects`" + ` and ` + "`select_project`" + `.
3. ` + "`translation_view`" + ` for the locale you are working on.
4. ` + "`update_translation`" + ` row by row.

## Docs

- ` + "`termstate://docs/concepts`" + ` covers projects, locales, the reference locale and how the cache stays consistent.
- ` + "`termstate://docs/workflows/translating`" + ` is the translation loop.

## Limitations

- Labels and tags are readable through ` + "`translation_view`" + ` but are managed elsewhere.
- Results reflect the local cache; pass ` + "`refresh`" + ` to ` + "`list_terms`" + ` to refetch.
`,
	},
	{
		URI:         "termstate://docs/concepts",
		Name:        "docs_concepts",
		Title:       "termstate concepts",
		Description: "Glossary and the rules the cache follows.",
		Content: `# Concepts

- **Session**: signed in or anonymous. An expired or rejected token signs you out and clears every cache.
- **Current project**: selecting a project clears terms, translations, labels, tags, team, invites and clients before loading the new project.
- **Project locale**: a locale enabled for the project. ` + "`add_locale`" + ` enables one.
- **Reference locale**: shown as ` + "`value_ref`" + ` in ` + "`translation_view`" + `. Choosing the working locale as reference shows nothing.
- **Stats**: progress per locale and for the whole project. Recomputed by the server after term changes.

## Consistency

- Deleting a term also drops its translations from the cache.
- Labels attached to terms are shown immediately and rolled back when the server refuses.
- Responses that arrive after a project switch are discarded.
`,
	},
	{
		URI:         "termstate://docs/workflows/translating",
		Name:        "docs_workflow_translating",
		Title:       "Translating a project",
		Description: "Playbook for filling in missing translations.",
		Content: `# Translating

1. ` + "`select_project`" + ` and note ` + "`locales`" + `.
2. Optionally ` + "`select_reference_locale`" + ` with a locale you can read.
3. ` + "`translation_view`" + ` with ` + "`filter_untranslated: true`" + `.
4. For each row, ` + "`update_translation`" + ` with ` + "`term_id`" + `, ` + "`locale`" + ` and ` + "`value`" + `.
5. ` + "`project_stats`" + ` to confirm progress.

On PLAN_LIMIT, stop creating terms; translations are not limited.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
