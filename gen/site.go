package gen

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// siteTemplate is the full page. The description is injected as
// template.HTML: it is operator-supplied trusted content and may carry
// markup. Everything else goes through normal escaping.
const siteTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title>
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<style>
  body{font-family:Arial,"PingFang SC";margin:0;padding:0;background:#fff;color:#222;}
  .container{max-width:860px;margin:40px auto;padding:0 20px;}
  .chip{background:#f3f3f3;border-radius:30px;padding:8px 14px;margin:4px;display:inline-block;}
  .comment{border:1px solid #ddd;border-radius:10px;padding:10px;margin-bottom:8px;}
  .meta{font-size:12px;color:#777;margin-bottom:4px;}
</style></head>
<body><div class="container">
<h1>{{.Title}}</h1>
<img src="{{.ImagePath}}" style="width:100%;border-radius:12px;">
<p>{{.Description}}</p>
<div>
<span class="chip">👍 Likes: <b>{{.Likes}}</b></span>
<span class="chip">📌 Bookmarks: <b>{{.Bookmarks}}</b></span>
<span class="chip">🔁 Shares: <b>{{.Shares}}</b></span>
<span class="chip">💬 Comments: <b>{{.CommentCount}}</b></span>
</div>
<h2>Comments ({{.CommentCount}})</h2>
{{range .Comments}}<div class="comment"><div class="meta">{{.DisplayTime}}</div><div>{{.Handle}}: {{.Text}}</div></div>
{{end}}</div></body></html>
`

// refreshSeconds is the client-side reload interval baked into the page.
const refreshSeconds = 15

// SiteRenderer serializes engagement state into the static page artifact.
type SiteRenderer struct {
	outPath string
	tmpl    *template.Template
}

// sitePage is the template context for one render.
type sitePage struct {
	Title          string
	Description    template.HTML
	ImagePath      string
	RefreshSeconds int
	Likes          int
	Bookmarks      int
	Shares         int
	CommentCount   int
	Comments       []CommentEntry
}

// NewSiteRenderer creates a renderer targeting outPath (the index.html
// location).
func NewSiteRenderer(outPath string) *SiteRenderer {
	return &SiteRenderer{
		outPath: outPath,
		tmpl:    template.Must(template.New("site").Parse(siteTemplate)),
	}
}

// Render writes the full page, overwriting any previous artifact. The write
// goes through a temp file and rename so the artifact is never observable
// half-written.
func (r *SiteRenderer) Render(cfg *Config, imageRelPath string, state *EngagementState) error {
	page := sitePage{
		Title:          cfg.Title,
		Description:    template.HTML(cfg.DescriptionHTML),
		ImagePath:      imageRelPath,
		RefreshSeconds: refreshSeconds,
		Likes:          state.Likes,
		Bookmarks:      state.Bookmarks,
		Shares:         state.Shares,
		CommentCount:   state.CommentCount,
		Comments:       state.Comments,
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.outPath), ".site-*.html")
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}
	if err := r.tmpl.Execute(tmp, page); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("rendering site: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.outPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", r.outPath, err)
	}
	return nil
}

// Path returns the artifact path this renderer writes to.
func (r *SiteRenderer) Path() string {
	return r.outPath
}
