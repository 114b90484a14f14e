// Package mali provides the types and services of a personal debt and credit
// ledger: informal "who owes whom" bookkeeping between a user and named
// counterparties. It is designed to be local-first, keeping every record in a
// small key-value store the user fully owns.
//
// The core functionalities include:
//   - Account Management: Registering and authenticating accounts, and keeping
//     track of the single active session.
//   - Ledger Engine: Creating entries, applying partial payments with a
//     clamped running total, deriving the pending/settled status, and deleting
//     entries.
//   - Aggregation: Global and per-counterparty summaries of the remaining
//     balances of pending entries. Amounts carry a free-form currency label
//     and are summed as raw numbers, without conversion.
//   - Data Persistence: A RecordStore abstraction over the three collections
//     (accounts, session, entries), with an in-memory implementation for tests
//     and a bbolt-backed one for real use.
//
// This package serves as the foundational logic for the `mali` command-line
// tool; the Gemini-backed advice generation lives in the advisor subpackage.
package mali
