package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mariana/talent-hub/internal/db"
)

// contentSelectors are tried in order to find the posting body. The first
// match wins; body is the fallback.
var contentSelectors = []string{
	".job-description",
	"#job-description",
	".job-details",
	".posting-content",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// sectionHeadings maps lowercase heading text to a JobDraft list field.
var sectionHeadings = map[string]string{
	"responsabilidades": "responsibilities",
	"atividades":        "responsibilities",
	"responsibilities":  "responsibilities",
	"requisitos":        "requirements",
	"requirements":      "requirements",
	"qualificações":     "requirements",
	"benefícios":        "benefits",
	"benefits":          "benefits",
}

// JobDraft is a job posting parsed from an external page, pending review
// before it becomes a job.
type JobDraft struct {
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`
	SourceURL        string   `json:"source_url"`
	SourceName       string   `json:"source_name"`
}

// ToJob converts the draft into a job record ready for creation.
func (d *JobDraft) ToJob() *db.Job {
	job := &db.Job{
		Title:            d.Title,
		Location:         d.Location,
		Description:      d.Description,
		Responsibilities: d.Responsibilities,
		Requirements:     d.Requirements,
		Benefits:         d.Benefits,
		Status:           db.JobStatusActive,
	}
	if d.SourceURL != "" {
		job.Sources = db.JobSources{{Name: d.SourceName, URL: d.SourceURL}}
	}
	return job
}

// Importer fetches and parses job postings.
type Importer struct {
	fetcher *Fetcher
}

// NewImporter creates an Importer.
func NewImporter() *Importer {
	return &Importer{fetcher: NewFetcher()}
}

// Import fetches a posting URL and parses it into a draft.
func (i *Importer) Import(ctx context.Context, urlStr string) (*JobDraft, error) {
	html, err := i.fetcher.FetchHTML(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	draft, err := ParsePosting(html)
	if err != nil {
		return nil, err
	}
	draft.SourceURL = urlStr
	draft.SourceName = sourceName(urlStr)
	return draft, nil
}

// ParsePosting extracts a job draft from posting HTML.
func ParsePosting(html string) (*JobDraft, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse posting HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	draft := &JobDraft{Title: extractTitle(doc)}

	content := findContent(doc)
	extractSections(content, draft)
	draft.Description = cleanText(descriptionText(content))

	if draft.Title == "" && draft.Description == "" {
		return nil, fmt.Errorf("no job content found in page")
	}
	return draft, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, sel := range []string{".job-title", "h1", "title"} {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func findContent(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return s.First()
		}
	}
	return doc.Find("body")
}

// extractSections pulls list items that follow recognized section headings.
func extractSections(content *goquery.Selection, draft *JobDraft) {
	content.Find("h2, h3, h4, strong").Each(func(_ int, heading *goquery.Selection) {
		field, ok := sectionHeadings[normalizeHeading(heading.Text())]
		if !ok {
			return
		}

		list := heading.NextAllFiltered("ul, ol").First()
		if list.Length() == 0 {
			list = heading.Parent().Find("ul, ol").First()
		}

		var items []string
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) == 0 {
			return
		}

		switch field {
		case "responsibilities":
			draft.Responsibilities = append(draft.Responsibilities, items...)
		case "requirements":
			draft.Requirements = append(draft.Requirements, items...)
		case "benefits":
			draft.Benefits = append(draft.Benefits, items...)
		}
	})
}

func normalizeHeading(text string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(text), ":"))
}

// descriptionText returns the content's paragraph text, skipping the lists
// captured as sections.
func descriptionText(content *goquery.Selection) string {
	var paragraphs []string
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n")
	}
	return content.Text()
}

func cleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func sourceName(urlStr string) string {
	host := urlStr
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
