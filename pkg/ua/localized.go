/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

// Human readable text with optional locale, like «en-US»
type LocalizedText struct {
	Locale string `json:"Locale,omitempty" xml:"Locale,omitempty"`
	Text   string `json:"Text,omitempty" xml:"Text,omitempty"`
}

func NewLocalizedText(locale, text string) LocalizedText {
	return LocalizedText{Locale: locale, Text: text}
}

// Returns text, prefixed with «locale:» if locale is not empty
func (lt LocalizedText) String() string {
	if lt.Locale == "" {
		return lt.Text
	}
	return lt.Locale + ":" + lt.Text
}
