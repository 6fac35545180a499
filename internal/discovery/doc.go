// Package discovery ranks unseen catalog records against a learned motif
// lexicon.
//
// A candidate's score is the sum of the weights of every lexicon motif found
// in its text, minus a penalty per dreary token, plus regional surcharges and
// a legacy bonus when the film shares a creator with something the user
// already liked. Motif matching is literal substring containment against the
// lowercased text, not token matching; that is a deliberate recall choice, so
// a motif may match inside a longer word.
package discovery
