// Package sheet fetches maker event rows from a published Google Sheets
// spreadsheet via its CSV export endpoint.
//
// The spreadsheet uses Japanese column headers (名称, 場所, 地域, から, まで,
// URL, 備考) and groups rows under year header rows like "2025年"; month/day
// cells inherit the year of the most recent header row.
package sheet
