package metadata

import "github.com/ThreeDotsLabs/watermill/message"

// FromWatermill converts Watermill message metadata into a Metadata map.
func FromWatermill(md message.Metadata) Metadata {
	converted := make(Metadata, len(md))
	for k, v := range md {
		converted[k] = v
	}
	return converted
}

// ToWatermill converts a Metadata map into Watermill message metadata.
func ToWatermill(m Metadata) message.Metadata {
	converted := make(message.Metadata, len(m))
	for k, v := range m {
		converted[k] = v
	}
	return converted
}
