package djdocs

// Link allocates one Page per raw record and resolves the Parent, Previous,
// and Next references by URL lookup. Parents come from SectionParent;
// previous and next come from the records' navigation targets. A target URL
// that is not among the records leaves the reference nil.
//
// The returned pages keep the order of records. When two records share a
// URL the first one is the lookup target.
func Link(records []*RawPage) []*Page {
	refs := make([]pageRefs, len(records))
	for i, r := range records {
		parentURL, _ := SectionParent(r.URL)
		refs[i] = pageRefs{
			page: &Page{
				URL:     r.URL,
				Title:   r.Title,
				Content: r.Content,
			},
			parentURL:   parentURL,
			previousURL: r.PreviousURL,
			nextURL:     r.NextURL,
		}
	}
	return resolve(refs)
}

// pageRefs is an unlinked page with the URLs of its references.
type pageRefs struct {
	page        *Page
	parentURL   string
	previousURL string
	nextURL     string
}

// resolve wires the references of each page and returns the pages in order.
func resolve(refs []pageRefs) []*Page {
	byURL := make(map[string]*Page, len(refs))
	for _, r := range refs {
		if _, ok := byURL[r.page.URL]; !ok {
			byURL[r.page.URL] = r.page
		}
	}

	lookup := func(u string) *Page {
		if u == "" {
			return nil
		}
		return byURL[u]
	}

	pages := make([]*Page, len(refs))
	for i, r := range refs {
		r.page.Parent = lookup(r.parentURL)
		r.page.Previous = lookup(r.previousURL)
		r.page.Next = lookup(r.nextURL)
		pages[i] = r.page
	}
	return pages
}
