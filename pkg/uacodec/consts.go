/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uacodec

// 100-nanosecond intervals between 1601-01-01 and 1970-01-01
const unixEpochTicks int64 = 116_444_736_000_000_000

// Maximum length of decoded arrays, strings and byte strings
const (
	maxArrayLength  = 1 << 20
	maxStringLength = 1 << 24
)

// Binary NodeId encoding masks
const (
	nodeIDEncoding_TwoByte    byte = 0x00
	nodeIDEncoding_FourByte   byte = 0x01
	nodeIDEncoding_Numeric    byte = 0x02
	nodeIDEncoding_String     byte = 0x03
	nodeIDEncoding_GUID       byte = 0x04
	nodeIDEncoding_ByteString byte = 0x05
)

// Binary ExtensionObject body encodings
const (
	extensionBody_None   byte = 0x00
	extensionBody_Binary byte = 0x01
)

// Binary LocalizedText encoding mask bits
const (
	localizedText_Locale byte = 0x01
	localizedText_Text   byte = 0x02
)

// Names of JSON properties and XML elements
const (
	name_SwitchField = "SwitchField"
	name_Value       = "Value"
	name_TypeID      = "TypeId"
	name_Identifier  = "Identifier"
	name_Body        = "Body"
)

// Enumerated value XML text is «Name_Value»
const enumXMLSeparator = '_'
