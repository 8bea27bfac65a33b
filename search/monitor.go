package search

// RetrievalMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type RetrievalMonitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	TokenMatched(token string, occurrences int)
	Finish(results []Result)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)               {}
func (n *noopMonitor) AfterTokenize(_ []string)     {}
func (n *noopMonitor) TokenMatched(_ string, _ int) {}
func (n *noopMonitor) Finish(_ []Result)            {}
