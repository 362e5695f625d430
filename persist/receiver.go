package persist

// Receiver is implemented by values that keep a persisted mirror of a runtime
// shape the host serializer cannot store directly.
//
// BeforeSerialize is called before the host reads the persisted fields.
// AfterDeserialize is called right after the host populated them and before
// any runtime read.
type Receiver interface {
	BeforeSerialize()
	AfterDeserialize()
}
