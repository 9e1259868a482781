package scraper

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"mspro-labs/cupnote/internal/config"
)

var logger = log.New(os.Stdout, "SCRAPER: ", log.LstdFlags|log.Lshortfile)

// Page is one product detail page flattened into label-like lines.
type Page struct {
	URL   string
	Lines []string
}

// Run orchestrates the entire scraping process: launch, list, and fetch each product.
func Run(cfg *config.SiteConfig) ([]Page, error) {
	logger.Println("Launching headless browser...")
	browser, err := launchBrowser()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.MustClose()

	logger.Printf("Navigating to: %s", cfg.CategoryURL)
	html, err := fetchHTML(browser, cfg.CategoryURL, cfg, cfg.Selectors.ProductListWait)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML: %w", err)
	}

	links, err := parseProductLinks(html, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	logger.Printf("Found %d product links", len(links))

	var pages []Page
	for _, link := range links {
		detail, err := fetchHTML(browser, link, cfg, "")
		if err != nil {
			logger.Printf("Skipping %s: %v", link, err)
			continue
		}
		lines, err := extractLines(detail, cfg.Selectors)
		if err != nil {
			logger.Printf("Skipping %s: %v", link, err)
			continue
		}
		pages = append(pages, Page{URL: link, Lines: lines})
	}
	return pages, nil
}

func launchBrowser() (*rod.Browser, error) {
	l := launcher.New().Headless(true).NoSandbox(true)
	u, err := l.Launch()
	if err != nil {
		return nil, err
	}
	return rod.New().ControlURL(u).MustConnect(), nil
}

func fetchHTML(browser *rod.Browser, target string, cfg *config.SiteConfig, waitFor string) (html string, err error) {
	page, err := stealth.Page(browser)
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Generic panic recovery to ensure browser cleanup
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Panic in fetchHTML: %v", r)
			err = fmt.Errorf("page %s: %v", target, r)
		}
	}()

	page = page.Timeout(90 * time.Second)

	page.MustNavigate(target)
	page.MustWaitStable()

	// Popups are optional; a missing selector must not fail the scrape.
	for _, sel := range []string{cfg.Selectors.CookieButton, cfg.Selectors.NewsletterPopup} {
		if sel == "" {
			continue
		}
		_ = rod.Try(func() {
			page.Timeout(5 * time.Second).MustElement(sel).MustClick()
			page.MustWaitStable()
		})
	}

	if waitFor != "" {
		logger.Printf("Waiting for: %s", waitFor)
		page.MustWaitElementsMoreThan(waitFor, 0)
	}

	return page.HTML()
}

// parseProductLinks lists absolute product URLs on the category page,
// skipping names with a disallowed keyword and stopping at MaxProducts.
func parseProductLinks(html string, cfg *config.SiteConfig) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.CategoryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid category_url: %w", err)
	}

	var links []string
	seen := make(map[string]bool)
	sel := cfg.Selectors

	doc.Find(sel.ProductRow).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link := s.Find(sel.Link).First()
		name := strings.TrimSpace(link.Text())
		href, ok := link.Attr("href")
		if !ok || name == "" {
			return true
		}

		// Keyword Filter
		nameLower := strings.ToLower(name)
		for _, kw := range cfg.DisallowedKeywords {
			if strings.Contains(nameLower, strings.ToLower(kw)) {
				logger.Printf("Skipping (keyword '%s'): %s", kw, name)
				return true
			}
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			logger.Printf("Skipping bad link %q: %v", href, err)
			return true
		}
		abs := base.ResolveReference(ref).String()
		if seen[abs] {
			return true
		}
		seen[abs] = true
		links = append(links, abs)

		return cfg.MaxProducts <= 0 || len(links) < cfg.MaxProducts
	})

	return links, nil
}

// extractLines flattens a detail page the way a label reads: title first,
// then each spec row's cells in order, then the description lines.
func extractLines(html string, sel config.Selectors) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var lines []string
	add := func(text string) {
		for _, l := range strings.Split(text, "\n") {
			if l = strings.Join(strings.Fields(l), " "); l != "" {
				lines = append(lines, l)
			}
		}
	}

	if sel.Title != "" {
		add(doc.Find(sel.Title).First().Text())
	}
	if sel.SpecRow != "" {
		cell := sel.SpecCell
		if cell == "" {
			cell = "th, td"
		}
		doc.Find(sel.SpecRow).Each(func(_ int, row *goquery.Selection) {
			row.Find(cell).Each(func(_ int, c *goquery.Selection) {
				add(c.Text())
			})
		})
	}
	if sel.Description != "" {
		doc.Find(sel.Description).Each(func(_ int, d *goquery.Selection) {
			d.Find("br").ReplaceWithHtml("\n")
			d.Find("p, li").Each(func(_ int, p *goquery.Selection) {
				p.AppendHtml("\n")
			})
			add(d.Text())
		})
	}
	return lines, nil
}
