package ui

// BannerKind selects the style of a full-screen notice.
type BannerKind int

const (
	BannerInfo BannerKind = iota
	BannerSuccess
	BannerFailure
	BannerWarning
)

// Banner draws a full-screen notice and waits for any key.
func (s *Screen) Banner(kind BannerKind, title string, details ...string) {
	s.ShowBanner(kind, title, details...)
	s.WaitKey()
}

// ShowBanner draws the notice without waiting. The process runner uses this
// to leave a status frame up while an external command owns the terminal.
func (s *Screen) ShowBanner(kind BannerKind, title string, details ...string) {
	style := s.pal.Text
	marker := ""
	switch kind {
	case BannerSuccess:
		style, marker = s.pal.Success, "✓ "
	case BannerFailure:
		style, marker = s.pal.Fail, "✗ "
	case BannerWarning:
		style, marker = s.pal.Warning, "⚠  "
	}

	lines := []string{style.Render(marker + title), ""}
	for _, d := range details {
		lines = append(lines, s.pal.Muted.Render(d))
	}
	if kind != BannerInfo {
		lines = append(lines, "", s.pal.Subtitle.Render("Press any key to continue."))
	}
	s.Render(lines)
}
