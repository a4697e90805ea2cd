package services

// Services defined in this package:
// - SessionService: starts and ends calculator sessions and issues their tokens
// - GPAService: ledger operations and GPA calculation within a session
