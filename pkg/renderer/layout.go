package renderer

import (
	"html/template"
	"strings"

	"github.com/nikogura/cvgen/pkg/audience"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/emphasis"
	"github.com/nikogura/cvgen/pkg/markup"
	"github.com/pkg/errors"
)

// ContactSeparator joins the parts of the header contact line.
const ContactSeparator = " | "

// Page is the laid-out content of one audience's CV. Text fields hold the
// author's inline markup as written.
type Page struct {
	Audience   string
	Name       template.HTML
	Contact    []ContactPart
	HasSummary bool
	Summary    template.HTML
	HasSkills  bool
	Skills     template.HTML
	Jobs       []JobBlock
	Education  template.HTML
	Languages  template.HTML
}

// ContactPart is one entry of the contact line. Parts with a URL render as links.
type ContactPart struct {
	Text string
	URL  string
}

// JobBlock is a job that kept at least one bullet for the audience.
type JobBlock struct {
	Title   template.HTML
	Company template.HTML
	Dates   template.HTML
	Intro   template.HTML
	Bullets []template.HTML
}

// ContactLine returns phone, email, LinkedIn and GitHub in that order, skipping blanks.
func ContactLine(info content.ContactInfo) (parts []ContactPart) {
	parts = make([]ContactPart, 0, 4)
	if phone := strings.TrimSpace(info.Phone); phone != "" {
		parts = append(parts, ContactPart{Text: phone})
	}
	if email := strings.TrimSpace(info.Email); email != "" {
		parts = append(parts, ContactPart{Text: email})
	}
	if linkedin := strings.TrimSpace(info.LinkedInURL); linkedin != "" {
		parts = append(parts, ContactPart{Text: "LinkedIn", URL: linkedin})
	}
	if github := strings.TrimSpace(info.GitHubURL); github != "" {
		parts = append(parts, ContactPart{Text: "GitHub", URL: github})
	}
	return parts
}

// ContactText is the plain-text form of the contact line.
func ContactText(parts []ContactPart) (line string) {
	texts := make([]string, len(parts))
	for i, part := range parts {
		texts[i] = part.Text
	}
	line = strings.Join(texts, ContactSeparator)
	return line
}

// Layout selects and formats the content shown to aud.
//
// Only the first applicable summary and skills items are used. Jobs without an
// applicable bullet are dropped together with their intro. Summary, intro and
// bullets are emphasized; every other field is shown as written.
func Layout(doc content.Document, aud string, emph *emphasis.Emphasizer) (page Page, err error) {
	page, err = layout(doc, aud, emph, false)
	return page, err
}

// layout is Layout with optional inline Markdown in the emphasized fields.
func layout(doc content.Document, aud string, emph *emphasis.Emphasizer, markdown bool) (page Page, err error) {
	if emph == nil {
		emph = emphasis.Default()
	}

	page = Page{
		Audience:  aud,
		Name:      verbatim(doc.Name),
		Contact:   ContactLine(doc.ContactInfo),
		Education: verbatim(doc.Education),
		Languages: verbatim(doc.Languages),
	}

	if summaries := audience.Filter(doc.Summary, aud); len(summaries) > 0 {
		page.Summary, err = prose(summaries[0].Text, emph, markdown)
		if err != nil {
			err = errors.Wrap(err, "summary")
			return page, err
		}
		page.HasSummary = true
	}

	if skills := audience.Filter(doc.Skills, aud); len(skills) > 0 {
		page.Skills = verbatim(skills[0].Text)
		page.HasSkills = true
	}

	for i, job := range doc.Experience {
		bullets := audience.Filter(job.Bullets, aud)
		if len(bullets) == 0 {
			continue
		}

		block := JobBlock{
			Title:   verbatim(job.Title),
			Company: verbatim(job.Company),
			Dates:   verbatim(job.Dates),
			Bullets: make([]template.HTML, 0, len(bullets)),
		}

		if strings.TrimSpace(job.Intro) != "" {
			block.Intro, err = prose(job.Intro, emph, markdown)
			if err != nil {
				err = errors.Wrapf(err, "experience #%d intro", i)
				return page, err
			}
		}

		for j, bullet := range bullets {
			var formatted template.HTML
			formatted, err = prose(bullet.Text, emph, markdown)
			if err != nil {
				err = errors.Wrapf(err, "experience #%d bullet #%d", i, j)
				return page, err
			}
			block.Bullets = append(block.Bullets, formatted)
		}

		page.Jobs = append(page.Jobs, block)
	}

	return page, err
}

// verbatim hands author text to the template unchanged. Content text is
// inline HTML written by the user running the tool.
func verbatim(text string) (out template.HTML) {
	//nolint:gosec // content files are authored by the user running the tool
	out = template.HTML(text)
	return out
}

// prose emphasizes vocabulary terms, rendering inline Markdown first when markdown is set.
func prose(text string, emph *emphasis.Emphasizer, markdown bool) (out template.HTML, err error) {
	rendered := text
	if markdown {
		rendered, err = markup.Inline(text)
		if err != nil {
			return out, err
		}
	}
	out = verbatim(emph.Emphasize(rendered))
	return out, err
}
