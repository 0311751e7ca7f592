package metadata

// Store is the full metadata contract a backend must satisfy. Mutations are
// mutually exclusive; reads observe consistent snapshots.
type Store interface {
	Retriever
	Writer
	Remover
	Lister
}
