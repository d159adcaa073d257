// Package ids generates prefixed record identifiers. A ksuid carries a
// second-resolution timestamp followed by random payload, so IDs sort
// roughly by creation time while staying unguessable.
package ids

import "github.com/segmentio/ksuid"

const (
	PrefixContactMessage = "msg"
	PrefixMeetingRequest = "mtg"
)

func New(prefix string) string {
	return prefix + "_" + ksuid.New().String()
}
