package fserr

// Classification indicates whether an error should trigger a retry.
// Backends on transient media (flash, network mounts) surface device
// faults as retryable; contract violations never are.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed
	// on retry. Example: a transient device fault surfaced as KindIO.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry. Examples: missing paths, permission denials, invalid input.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be
// attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error kinds to their default classification.
var defaultClassifications = map[Kind]Classification{
	// Retryable: transient backend faults.
	KindIO: ClassificationRetryable,

	// Permanent: the filesystem state or the arguments must change first.
	KindNotFound:          ClassificationPermanent,
	KindAlreadyExists:     ClassificationPermanent,
	KindNotADirectory:     ClassificationPermanent,
	KindIsADirectory:      ClassificationPermanent,
	KindPermissionDenied:  ClassificationPermanent,
	KindDirectoryNotEmpty: ClassificationPermanent,
	KindCrossesDevices:    ClassificationPermanent,
	KindInvalidInput:      ClassificationPermanent,
	KindClosed:            ClassificationPermanent,
	KindUnsupported:       ClassificationPermanent,
	KindUnknown:           ClassificationPermanent,
}

// defaultClassification returns the default classification for a kind.
// Returns ClassificationPermanent if the kind is not in the map, which is
// the safe default for retry loops.
func defaultClassification(kind Kind) Classification {
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}
