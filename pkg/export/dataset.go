package export

import "fmt"

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Section is a titled table inside a document.
type Section struct {
	Title string
	Data  Dataset
}

// Document groups one or more sections under a title.
type Document struct {
	Title    string
	Sections []Section
}

// Single wraps one dataset as an untitled single-section document.
func Single(title string, data Dataset) Document {
	return Document{Title: title, Sections: []Section{{Data: data}}}
}

func (d Document) validate() error {
	if len(d.Sections) == 0 {
		return fmt.Errorf("document has no sections")
	}
	for i, s := range d.Sections {
		if len(s.Data.Headers) == 0 {
			return fmt.Errorf("section %d requires at least one header", i)
		}
	}
	return nil
}
