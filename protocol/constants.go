package protocol

const (
	LENGTH_VERSION          = 3
	LENGTH_TYPE_ID          = 3
	LENGTH_LITERAL_GROUP    = 4
	LENGTH_TOTAL_BIT_LENGTH = 15
	LENGTH_SUB_PACKET_COUNT = 11
)

const (
	TYPE_SUM          = 0
	TYPE_PRODUCT      = 1
	TYPE_MINIMUM      = 2
	TYPE_MAXIMUM      = 3
	TYPE_LITERAL      = 4
	TYPE_GREATER_THAN = 5
	TYPE_LESS_THAN    = 6
	TYPE_EQUAL_TO     = 7
)

const (
	LENGTH_TYPE_TOTAL_BITS = 0
	LENGTH_TYPE_COUNT      = 1
)

// literal values are accumulated in a uint64
const MAX_LITERAL_BITS = 64
