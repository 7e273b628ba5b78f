package services

// Services defined in this package:
// - CatalogService: serves faculties, programs and the searchable
//   course catalog from an in-memory snapshot
// - SessionService: session lifecycle, semester/course ledger
//   mutations and the on-read GPA summary
