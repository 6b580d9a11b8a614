// Package testdata contains fixtures captured from live platform replies.
// Tests use them to make sure the verification pipeline handles actual
// API payloads, not just synthetic ones.
package testdata

// RealPayloadAsString is the payload of a real whitelisted address reply
// (ALGO blockchain, current schema with contractType and tnParticipantID).
const RealPayloadAsString = `{"currency":"ALGO","addressType":"individual","address":"P4QCJV2YYLAEULGLJQAW4XTU3EBOHWL5C46I5SPLH2H7AJEE367ZDACV5A","memo":"","label":"TN_Bank ACC Cockroach_WTRTest","customerId":"","exchangeAccountId":"","linkedInternalAddresses":[],"contractType":"","tnParticipantID":"84dc35e3-0af8-4b6b-be75-785f4b149d16"}`

// RealMetadataHash is the SHA-256 hash of RealPayloadAsString as announced
// in the envelope metadata.
const RealMetadataHash = "830063cfa8c1dbd696d670fc8360e85fbc57c3ffa66d22358b9a7d6befabb2f0"
