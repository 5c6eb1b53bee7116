// Package sitelens profiles web pages and answers questions about them.
// It renders a page in a browser, derives a structured profile using
// heuristic extraction rules, and answers natural language questions by
// summarizing the page text with a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, gemini/, sqlite/).
package sitelens
