// Package candidate narrows and pages the ranked candidate words offered
// for one pending phonetic token.
//
// Candidates arrive already ranked. A Filter narrows them by reading,
// radical and minimum stroke counts; BestMatchFirst keeps the top-ranked
// matches on the first page. A Pager browses any slice circularly, and
// Groups pages named boards such as symbol tables.
//
// None of the types here are safe for concurrent use.
package candidate
