/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ua

import "fmt"

// Operation status code. Two highest bits are severity: 00 good, 01 uncertain, 10 bad
type StatusCode uint32

const (
	StatusGood                        StatusCode = 0
	StatusBadUnexpectedError          StatusCode = 0x80010000
	StatusBadInternalError            StatusCode = 0x80020000
	StatusBadCommunicationError       StatusCode = 0x80050000
	StatusBadTimeout                  StatusCode = 0x800A0000
	StatusBadTooManyOperations        StatusCode = 0x80100000
	StatusBadNodeIDUnknown            StatusCode = 0x80340000
	StatusBadAttributeIDInvalid       StatusCode = 0x80350000
	StatusBadContinuationPointInvalid StatusCode = 0x804A0000
	StatusBadNoContinuationPoints     StatusCode = 0x804B0000
	StatusBadReferenceTypeIDInvalid   StatusCode = 0x804C0000
	StatusBadBrowseDirectionInvalid   StatusCode = 0x804D0000
)

const (
	severityMask      StatusCode = 0xC0000000
	severityUncertain StatusCode = 0x40000000
	severityBad       StatusCode = 0x80000000
)

var statusCodeStr = map[StatusCode]string{
	StatusGood:                        "Good",
	StatusBadUnexpectedError:          "BadUnexpectedError",
	StatusBadInternalError:            "BadInternalError",
	StatusBadCommunicationError:       "BadCommunicationError",
	StatusBadTimeout:                  "BadTimeout",
	StatusBadTooManyOperations:        "BadTooManyOperations",
	StatusBadNodeIDUnknown:            "BadNodeIdUnknown",
	StatusBadAttributeIDInvalid:       "BadAttributeIdInvalid",
	StatusBadContinuationPointInvalid: "BadContinuationPointInvalid",
	StatusBadNoContinuationPoints:     "BadNoContinuationPoints",
	StatusBadReferenceTypeIDInvalid:   "BadReferenceTypeIdInvalid",
	StatusBadBrowseDirectionInvalid:   "BadBrowseDirectionInvalid",
}

func (sc StatusCode) IsGood() bool { return sc&severityMask == 0 }

func (sc StatusCode) IsUncertain() bool { return sc&severityMask == severityUncertain }

func (sc StatusCode) IsBad() bool { return sc&severityBad != 0 }

// Returns true if status means that request did not reach peer or response was lost
func (sc StatusCode) IsTransportFailure() bool {
	return sc == StatusBadCommunicationError || sc == StatusBadTimeout
}

func (sc StatusCode) String() string {
	if s, ok := statusCodeStr[sc]; ok {
		return s
	}
	return fmt.Sprintf("StatusCode(0x%08X)", uint32(sc))
}

// StatusCode can be used as error
func (sc StatusCode) Error() string {
	return sc.String()
}
