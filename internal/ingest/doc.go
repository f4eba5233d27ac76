// Package ingest loads parameter record documents.
//
// The IODD and EDS container parsers run upstream and hand over their
// records as a JSON or YAML document:
//
//	source: sensor.eds
//	format: eds
//	parameters:
//	  - name: Watchdog Timer (ms)
//	    type_code: 0xC7
//	    help_string_2: RPI watchdog timeout period
//
// Documents are size-limited, optionally validated against an embedded
// JSON schema, and decoded into parameter.Record values. The document's
// source and format are copied onto records that do not set their own.
package ingest
