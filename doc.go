// Package cryptodash provides the view-model of a single-page cryptocurrency
// market dashboard. All market data is synthetic: a fixed catalog of assets
// whose recent price samples are produced by a random walk, static technical
// indicators, a static news feed and a short price history.
//
// The core functionalities include:
//   - Asset Catalog: an ordered, immutable set of Asset values, with lookups,
//     total market capitalization and per-asset market share.
//   - View-Model: a View holding the selected asset and the current time,
//     driven by a Loop that serializes clock ticks and selection events.
//   - Formatters: pure functions turning prices, volumes, percentages and
//     market shares into display strings.
//   - Snapshot: the display-ready projection of a View, suitable for the
//     markdown renderer or for JSON export.
//
// This package serves as the foundational logic for the `cryptodash`
// command-line tool.
package cryptodash
