// Package cmd wires the evaluateseg cobra command: flag parsing, viper
// config loading, TIFF label-volume decoding, and VOI/Rand score reporting.
package cmd
