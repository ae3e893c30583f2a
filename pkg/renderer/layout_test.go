package renderer

import (
	"html/template"
	"strings"
	"testing"

	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/emphasis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactLine(t *testing.T) {
	tests := []struct {
		name string
		info content.ContactInfo
		want string
		urls []string
	}{
		{
			name: "all parts",
			info: content.ContactInfo{
				Phone:       "555-0100",
				Email:       "jane@example.com",
				LinkedInURL: "https://linkedin.com/in/jane",
				GitHubURL:   "https://github.com/jane",
			},
			want: "555-0100 | jane@example.com | LinkedIn | GitHub",
			urls: []string{"", "", "https://linkedin.com/in/jane", "https://github.com/jane"},
		},
		{
			name: "blank links skipped",
			info: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com", LinkedInURL: "  "},
			want: "555-0100 | jane@example.com",
			urls: []string{"", ""},
		},
		{
			name: "github without linkedin",
			info: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com", GitHubURL: "https://github.com/jane"},
			want: "555-0100 | jane@example.com | GitHub",
			urls: []string{"", "", "https://github.com/jane"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := ContactLine(tt.info)
			assert.Equal(t, tt.want, ContactText(parts))

			urls := make([]string, len(parts))
			for i, part := range parts {
				urls[i] = part.URL
			}
			assert.Equal(t, tt.urls, urls)
		})
	}
}

func TestLayoutSeedPerAudience(t *testing.T) {
	doc := content.Seed()

	tests := []struct {
		audience      string
		summaryHas    string
		skillsHas     string
		bulletsPerJob []int
	}{
		{audience: "frontend", summaryHas: "Full-Stack", skillsHas: "Vue.js", bulletsPerJob: []int{1, 1, 1}},
		{audience: "devops", summaryHas: "Site Reliability", skillsHas: "Terraform", bulletsPerJob: []int{2, 1, 1}},
		{audience: "fullstack", summaryHas: "Full-Stack", skillsHas: "Terraform", bulletsPerJob: []int{3, 2, 2}},
		{audience: "backend", summaryHas: "Full-Stack", skillsHas: "Terraform", bulletsPerJob: []int{3, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.audience, func(t *testing.T) {
			page, err := Layout(doc, tt.audience, nil)
			require.NoError(t, err)

			assert.Equal(t, template.HTML("John Doe"), page.Name)
			assert.True(t, page.HasSummary)
			assert.Contains(t, string(page.Summary), tt.summaryHas)
			assert.True(t, page.HasSkills)
			assert.Contains(t, string(page.Skills), tt.skillsHas)

			require.Len(t, page.Jobs, len(tt.bulletsPerJob))
			for i, want := range tt.bulletsPerJob {
				assert.Len(t, page.Jobs[i].Bullets, want, "job %d", i)
			}
		})
	}
}

func TestLayoutEmphasisScope(t *testing.T) {
	page, err := Layout(content.Seed(), "frontend", nil)
	require.NoError(t, err)

	assert.Contains(t, string(page.Summary), "<b>React</b>")
	assert.Contains(t, string(page.Jobs[0].Intro), "Lead developer")
	assert.Contains(t, string(page.Jobs[0].Bullets[0]), "<b>Next.js</b>")

	// skills, education and languages are shown as written
	assert.NotContains(t, string(page.Skills), "<b>React</b>")
	assert.Equal(t, template.HTML("<b>B.Sc. in Computer Science</b>, University of Technology · 2013–2017"), page.Education)
	assert.Equal(t, template.HTML("English – Native | Spanish – Fluent"), page.Languages)
}

func TestLayoutDropsJobWithoutBullets(t *testing.T) {
	doc := content.Seed()
	doc.Experience = []content.Job{
		{
			Title:   "Platform Engineer",
			Company: "Acme",
			Dates:   "2020 – 2021",
			Intro:   "Owned the build farm.",
			Bullets: []content.TaggedText{{Text: "Ran Jenkins.", TargetAudiences: []string{"devops"}}},
		},
		{
			Title:   "Web Developer",
			Company: "Initech",
			Dates:   "2018 – 2020",
			Bullets: []content.TaggedText{{Text: "Built forms.", TargetAudiences: []string{"frontend"}}},
		},
	}

	page, err := Layout(doc, "frontend", nil)
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, template.HTML("Web Developer"), page.Jobs[0].Title)
	assert.Empty(t, page.Jobs[0].Intro)

	html, err := HTML(page)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Owned the build farm.")
	assert.NotContains(t, string(html), "Platform Engineer")
}

func TestLayoutUniversalItems(t *testing.T) {
	doc := content.Document{
		Name:        "Jane Roe",
		ContactInfo: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com"},
		Summary:     []content.TaggedText{{Text: "Engineer who writes Go."}},
		Skills:      []content.TaggedText{{Text: "Go, SQL"}},
		Experience: []content.Job{
			{Title: "Engineer", Company: "Acme", Dates: "2020", Bullets: []content.TaggedText{{Text: "Shipped Go services."}}},
		},
		Education: "B.Sc.",
		Languages: "English",
	}

	page, err := Layout(doc, "General", emphasis.New([]string{"Go"}))
	require.NoError(t, err)

	assert.Equal(t, template.HTML("Engineer who writes <b>Go</b>."), page.Summary)
	assert.Equal(t, template.HTML("Go, SQL"), page.Skills)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, []template.HTML{"Shipped <b>Go</b> services."}, page.Jobs[0].Bullets)
}

func TestLayoutNoApplicableSummaryOrSkills(t *testing.T) {
	doc := content.Document{
		Name:        "Jane Roe",
		ContactInfo: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com"},
		Summary:     []content.TaggedText{{Text: "Backend person.", TargetAudiences: []string{"backend"}}},
		Skills:      []content.TaggedText{{Text: "SQL", TargetAudiences: []string{"backend"}}},
		Experience:  []content.Job{},
		Education:   "B.Sc.",
		Languages:   "English",
	}

	page, err := Layout(doc, "frontend", nil)
	require.NoError(t, err)
	assert.False(t, page.HasSummary)
	assert.False(t, page.HasSkills)
	assert.Empty(t, page.Jobs)

	html, err := HTML(page)
	require.NoError(t, err)
	out := string(html)
	assert.NotContains(t, out, "Backend person.")
	assert.Contains(t, out, "<h2>TECHNICAL SKILLS</h2>")
	assert.Contains(t, out, "<h2>PROFESSIONAL EXPERIENCE</h2>")
}

func TestHTMLSectionOrder(t *testing.T) {
	page, err := Layout(content.Seed(), "devops", nil)
	require.NoError(t, err)

	html, err := HTML(page)
	require.NoError(t, err)
	out := string(html)

	markers := []string{
		`<div class="name">John Doe</div>`,
		`<p class="summary">`,
		"<h2>TECHNICAL SKILLS</h2>",
		"<h2>PROFESSIONAL EXPERIENCE</h2>",
		"TechNova Solutions",
		"Orbit Systems",
		"Creative Code Studio",
		"<h2>EDUCATION</h2>",
		"<h2>LANGUAGES</h2>",
	}

	last := -1
	for _, marker := range markers {
		idx := strings.Index(out, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}

	assert.Contains(t, out, `john.doe@example.com | <a href="https://www.linkedin.com/in/johndoe-fake/">LinkedIn</a> | <a href="https://github.com/johndoe-fake">GitHub</a>`)
	assert.Contains(t, out, "@page { size: Letter; margin: 0.4in 0.5in; }")
}

func TestHTMLEscapesContactLine(t *testing.T) {
	page := Page{
		Name:    "Jane <i>Roe</i>",
		Contact: []ContactPart{{Text: "<Site>", URL: "javascript:alert(1)"}},
		Jobs: []JobBlock{
			{Title: "<b>R&amp;D</b> Lead", Company: "Acme", Dates: "2020", Bullets: []template.HTML{"<b>Go</b>"}},
		},
	}

	html, err := HTML(page)
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "&lt;Site&gt;")
	assert.Contains(t, out, "#ZgotmplZ")
	assert.Contains(t, out, `<div class="name">Jane <i>Roe</i></div>`)
	assert.Contains(t, out, `<span class="job-title"><b>R&amp;D</b> Lead</span>`)
	assert.Contains(t, out, "<li><b>Go</b></li>")
}

func TestLayoutVerbatimFields(t *testing.T) {
	doc := content.Document{
		Name:        "Jane *Q* Roe",
		ContactInfo: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com"},
		Summary:     []content.TaggedText{{Text: "Writes **Go** and C\\+\\+."}},
		Skills:      []content.TaggedText{{Text: "Go, _SQL_, C\\+\\+"}},
		Experience: []content.Job{
			{Title: "*Staff* Engineer", Company: "Acme_Corp_", Dates: "2020 \\ 2021", Bullets: []content.TaggedText{{Text: "Shipped *fast* Go."}}},
		},
		Education: "B.Sc. *Honours* in C\\+\\+, grade_A_ 2013 \\ 2017",
		Languages: "English – Native | Spanish – *fluent*",
	}

	for _, markdown := range []bool{false, true} {
		page, err := layout(doc, "General", emphasis.New([]string{"Go"}), markdown)
		require.NoError(t, err)

		assert.Equal(t, template.HTML(doc.Name), page.Name)
		assert.Equal(t, template.HTML(doc.Skills[0].Text), page.Skills)
		assert.Equal(t, template.HTML(doc.Education), page.Education)
		assert.Equal(t, template.HTML(doc.Languages), page.Languages)
		require.Len(t, page.Jobs, 1)
		assert.Equal(t, template.HTML(doc.Experience[0].Title), page.Jobs[0].Title)
		assert.Equal(t, template.HTML(doc.Experience[0].Company), page.Jobs[0].Company)
		assert.Equal(t, template.HTML(doc.Experience[0].Dates), page.Jobs[0].Dates)
	}
}

func TestLayoutMarkdownOptIn(t *testing.T) {
	doc := content.Document{
		Name:        "Jane Roe",
		ContactInfo: content.ContactInfo{Phone: "555-0100", Email: "jane@example.com"},
		Summary:     []content.TaggedText{{Text: "Writes **Go** daily."}},
		Skills:      []content.TaggedText{},
		Experience: []content.Job{
			{Title: "Engineer", Company: "Acme", Dates: "2020", Bullets: []content.TaggedText{{Text: "Shipped *fast* Go."}}},
		},
	}
	emph := emphasis.New([]string{"Go"})

	page, err := Layout(doc, "General", emph)
	require.NoError(t, err)
	assert.Equal(t, template.HTML("Writes **<b>Go</b>** daily."), page.Summary)
	assert.Equal(t, []template.HTML{"Shipped *fast* <b>Go</b>."}, page.Jobs[0].Bullets)

	page, err = layout(doc, "General", emph, true)
	require.NoError(t, err)
	assert.Equal(t, template.HTML("Writes <strong>Go</strong> daily."), page.Summary)
	assert.Equal(t, []template.HTML{"Shipped <em>fast</em> <b>Go</b>."}, page.Jobs[0].Bullets)
}
