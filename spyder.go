// Package spyder provides a concurrent domain reconnaissance crawler.
// It discovers reachable URLs by following same-origin links from one or
// more root domains and validates wordlist paths against each domain.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, zerolog/).
package spyder
