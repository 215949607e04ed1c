// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

// Package lds implements the biometric data groups DG2, DG3 and DG4 of the
// logical data structure of electronic machine readable travel documents
// (ICAO Doc 9303-10).
//
// Each data group is a CBEFF biometric information group template holding
// records in either the legacy ISO/IEC 19794 or the ISO/IEC 39794 format.
// Legacy records are kept as opaque octets while ISO/IEC 39794 records are
// decoded into the types of package iso39794.
package lds
