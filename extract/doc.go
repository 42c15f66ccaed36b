// Package extract applies the fixed labeled-field protocol to spans of
// extracted document text. The label set ("Orden de Transporte", "Fletero",
// "Nº", "Señor(es)", ...) and its capture semantics are a stable
// mini-protocol shared with every component that consumes field maps.
//
// Extraction is a pure function of the text span: the pattern table is built
// once at package initialization and never modified afterwards.
package extract
