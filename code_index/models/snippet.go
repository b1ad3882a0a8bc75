package models

// Snippet is one extracted region of source text filed under a symbol name.
type Snippet struct {
	Name string
	Text string
}

// Match pairs an index name with the file that currently owns it.
// Matches keep the order they were found in so prompt assembly stays
// deterministic.
type Match struct {
	Name string
	File string
}

// IndexStats summarizes what a scan put into the index.
type IndexStats struct {
	Files    int
	Names    int
	Snippets int
}
