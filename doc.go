// Package cfodash turns a reclassified profit-and-loss ledger into the
// management KPIs a small services business steers by.
//
// The package is a pure computation pipeline over an in-memory ledger:
//   - Import: heterogeneous tabular records (CSV, or the Google Sheets
//     values JSON) are normalized into canonical ledger entries.
//   - Classification: each entry's management category label is mapped to
//     one fixed taxonomy bucket by an ordered substring rule list.
//   - Aggregation: bucketed amounts are summed over a year/period filter
//     into nine base totals.
//   - KPIs: a deterministic formula chain derives margins, incidences and
//     profitability ratios (EBITDA, EBIT, ROS, ROI, ARPU, ...).
//   - Alerting: four monitored ratios are checked against editable targets
//     and sorted into red/yellow/green tiers with suggested actions.
//   - What-if: percentage deltas on revenue and the main cost blocks are
//     applied multiplicatively and the KPI chain is re-run.
//
// Nothing here performs I/O besides the import readers: every derived
// value is recomputed from the current ledger, so results are always
// consistent with the latest import. This package is the foundation of
// the `cfo` command-line tool.
package cfodash
