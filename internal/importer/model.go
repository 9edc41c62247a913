// Package importer ingests problem export files into a user's collection.
// It reads *.json files from a configured directory, validates and maps
// them to domain problems, then inserts them through the problem repository.
package importer

// ImportFile is the top-level JSON document of one export file.
type ImportFile struct {
	Source   string          `json:"source"`
	Problems []ImportProblem `json:"problems"`
}

// ImportProblem is one problem within an export file.
type ImportProblem struct {
	Title       string   `json:"title"`
	Link        string   `json:"link,omitempty"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags,omitempty"`
	CompanyTags []string `json:"company_tags,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}
