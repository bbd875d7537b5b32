// Package format provides locale-aware rendering of dates, numbers,
// currency amounts, percentages and relative times.
//
// Number, Integer, Percent and the numeric part of Currency delegate to
// x/text's CLDR-backed printers, so digit grouping and decimal
// separators follow each locale's conventions. Dates and relative times
// use small bundled per-locale pattern tables, because x/text carries
// no CLDR date patterns; locales without a bundled table fall back to
// English formatting instead of failing.
//
// All functions are pure and never return an error: an unrecognized or
// unsupported locale degrades to the default locale's conventions.
package format
