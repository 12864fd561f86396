// Package djdocs builds a browsable corpus of the Django documentation.
// It reads the documentation sitemap, keeps the curated topics and ref
// pages, converts each page body to markdown, and links the pages into a
// graph by URL section (parent) and in-page browse navigation
// (previous/next).
//
// This package contains domain types, interfaces, and the pure URL
// classification and linking logic, following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., sqlite/, goquery/, htmltomarkdown/).
package djdocs
