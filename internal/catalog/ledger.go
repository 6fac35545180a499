package catalog

// Ledger tracks identity keys already contributed during a run. It is created
// empty per run and discarded afterwards; it is never persisted.
type Ledger struct {
	seen map[string]struct{}
}

// NewLedger creates an empty dedup ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Admit marks the key and reports whether it was new. Every record-processing
// loop must consult this before counting a record toward any statistic, so a
// physical film contributes at most once per run.
func (l *Ledger) Admit(key string) bool {
	if _, ok := l.seen[key]; ok {
		return false
	}
	l.seen[key] = struct{}{}
	return true
}

// Len reports how many distinct identities have been admitted.
func (l *Ledger) Len() int {
	return len(l.seen)
}
