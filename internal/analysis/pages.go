package analysis

// Total is the number of links in the report.
func (r Report) Total() int {
	return len(r.Links)
}

// TotalPages is ceil(Total / PageSize); zero for an empty report.
func (r Report) TotalPages() int {
	size := r.pageSize()
	return (len(r.Links) + size - 1) / size
}

// DisplayPages is TotalPages, but never less than 1.
func (r Report) DisplayPages() int {
	if n := r.TotalPages(); n > 0 {
		return n
	}
	return 1
}

// ClampPage bounds a requested page number to [1, DisplayPages].
func (r Report) ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	if last := r.DisplayPages(); page > last {
		return last
	}
	return page
}

// Page returns the links on 1-based page p. Pages outside [1, TotalPages] are empty.
func (r Report) Page(p int) []DecoratedLink {
	size := r.pageSize()
	if p < 1 {
		return []DecoratedLink{}
	}
	start := (p - 1) * size
	if start >= len(r.Links) {
		return []DecoratedLink{}
	}
	end := start + size
	if end > len(r.Links) {
		end = len(r.Links)
	}
	return r.Links[start:end]
}

// PageStart is the zero-based sequence index of the first link on page p.
func (r Report) PageStart(p int) int {
	if p < 1 {
		return 0
	}
	return (p - 1) * r.pageSize()
}

// DuplicateCount is the number of links flagged as duplicates.
func (r Report) DuplicateCount() int {
	n := 0
	for _, l := range r.Links {
		if l.IsDuplicate {
			n++
		}
	}
	return n
}

// Absolute converts a page/position pair back into a 1-based sequence number.
func (r Report) Absolute(page, position int) int {
	return (page-1)*r.pageSize() + position
}

func (r Report) pageSize() int {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	return r.PageSize
}
