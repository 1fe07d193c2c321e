// Package format defines the wire-level enumerations shared across the
// object header protocol, the log container framing and the event
// catalogue: the ObjectType tag and the log container's CompressionMethod.
package format

// ObjectType identifies the event variant carried by an on-disk object.
// Values are a fixed enumeration with reserved gaps; reserved tags decode
// to a no-op skip rather than an error (see IsReserved, checked by
// internal/pipeline before dispatching to the event package).
//
// The full upstream enumeration runs to ~125 values; per this module's
// scope (the exhaustive field-by-field layout of every variant is treated
// as an external, general-schema concern), only a representative member of
// every bus family is given a named tag here plus every tag pinned by a
// concrete interoperability scenario. Unnamed tags within a family's
// documented range fall through to the generic Raw record on read.
type ObjectType uint16

const (
	ObjectTypeUnknown ObjectType = 0

	// CAN family.
	ObjectTypeCanMessage         ObjectType = 1
	ObjectTypeCanErrorFrame      ObjectType = 2
	ObjectTypeCanOverloadFrame   ObjectType = 3
	ObjectTypeCanDriverStatistic ObjectType = 4
	ObjectTypeCanDriverError     ObjectType = 31
	ObjectTypeCanDriverHwSync    ObjectType = 46
	ObjectTypeCanErrorFrameExt   ObjectType = 73
	ObjectTypeCanDriverErrorExt  ObjectType = 74
	ObjectTypeCanMessage2        ObjectType = 86
	ObjectTypeCanFdMessage       ObjectType = 100
	ObjectTypeCanFdMessage64     ObjectType = 101
	ObjectTypeCanFdErrorFrame64  ObjectType = 104

	// Application / system.
	ObjectTypeAppTrigger            ObjectType = 5
	ObjectTypeEnvIntegerVariable     ObjectType = 6
	ObjectTypeEnvDoubleVariable      ObjectType = 7
	ObjectTypeEnvStringVariable      ObjectType = 8
	ObjectTypeEnvDataVariable        ObjectType = 9
	ObjectTypeAppText                ObjectType = 65
	ObjectTypeEthernetFrame          ObjectType = 71
	ObjectTypeSystemVariable         ObjectType = 72
	ObjectTypeSerialEvent            ObjectType = 90
	ObjectTypeDriverOverrun          ObjectType = 91
	ObjectTypeEventComment           ObjectType = 92
	ObjectTypeGlobalMarker           ObjectType = 96
	ObjectTypeTestStructure          ObjectType = 118
	ObjectTypeDiagRequestInterp      ObjectType = 119
	ObjectTypeRealtimeClock          ObjectType = 51
	ObjectTypeUnknown115             ObjectType = 115

	// Container / reserved.
	ObjectTypeLogContainer ObjectType = 10
	ObjectTypeReserved52   ObjectType = 52
	ObjectTypeReserved116  ObjectType = 116
	ObjectTypeReserved117  ObjectType = 117

	// LIN family.
	ObjectTypeLinMessage         ObjectType = 11
	ObjectTypeLinCrcError        ObjectType = 12
	ObjectTypeLinDlcInfo         ObjectType = 13
	ObjectTypeLinReceiveError    ObjectType = 14
	ObjectTypeLinSendError       ObjectType = 15
	ObjectTypeLinSleepModeEvent  ObjectType = 16
	ObjectTypeLinWakeupEvent     ObjectType = 17
	ObjectTypeLinSpikeEvent      ObjectType = 18
	ObjectTypeLinChecksumInfo    ObjectType = 19
	ObjectTypeLinSyncError       ObjectType = 20
	ObjectTypeLinStatisticEvent  ObjectType = 54

	// MOST family.
	ObjectTypeMostSpy          ObjectType = 21
	ObjectTypeMostCtrl         ObjectType = 22
	ObjectTypeMostLightLock    ObjectType = 23
	ObjectTypeMostStatistic    ObjectType = 24
	ObjectTypeMostPkt          ObjectType = 28
	ObjectTypeMostPkt2         ObjectType = 29
	ObjectTypeMost150Message   ObjectType = 30
	ObjectTypeMostEthernetPkt  ObjectType = 32
	ObjectTypeMostStatisticEx  ObjectType = 33
	ObjectTypeMostSystemEvent  ObjectType = 34
	ObjectTypeMostAllocTab     ObjectType = 35
	ObjectTypeMost150AllocTab  ObjectType = 36
	ObjectTypeMost150Pkt       ObjectType = 77

	// FlexRay family.
	ObjectTypeFlexRayVFrReceiveMsgEx ObjectType = 25
	ObjectTypeFlexRayVFrStatus       ObjectType = 26
	ObjectTypeFlexRayV6Message       ObjectType = 27

	// J1708.
	ObjectTypeJ1708Message    ObjectType = 37
	ObjectTypeJ1708VirtualMsg ObjectType = 38

	// AFDX family.
	ObjectTypeAfdxFrame        ObjectType = 97
	ObjectTypeAfdxStatistic    ObjectType = 39
	ObjectTypeAfdxStatus       ObjectType = 40
	ObjectTypeAfdxBusStatistic ObjectType = 41
	ObjectTypeAfdxErrorEvent   ObjectType = 109

	// ARINC-429.
	ObjectTypeArinc429Error        ObjectType = 110
	ObjectTypeArinc429Status       ObjectType = 111
	ObjectTypeArinc429BusStatistic ObjectType = 112
	ObjectTypeArinc429Message      ObjectType = 113

	// WLAN / K-Line / GPS.
	ObjectTypeWlanFrame       ObjectType = 93
	ObjectTypeWlanStatistic   ObjectType = 94
	ObjectTypeKLineStatusEvent ObjectType = 99
	ObjectTypeGpsEvent        ObjectType = 50

	// Ethernet family.
	ObjectTypeEthernetRxError        ObjectType = 102
	ObjectTypeEthernetStatus         ObjectType = 103
	ObjectTypeEthernetStatistic      ObjectType = 114
	ObjectTypeEthernetFrameEx        ObjectType = 120
	ObjectTypeEthernetFrameForwarded ObjectType = 121
	ObjectTypeEthernetErrorEx        ObjectType = 122
	ObjectTypeEthernetErrorForwarded ObjectType = 123
)

// CompressionMethod is the two-value enum carried by a LogContainer's
// header. There is no third wire value: BLF defines exactly "stored" and
// "zlib deflate".
type CompressionMethod uint16

const (
	CompressionStored CompressionMethod = 0
	CompressionZlib   CompressionMethod = 2
)

func (c CompressionMethod) String() string {
	switch c {
	case CompressionStored:
		return "Stored"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}

// HeaderVersion identifies which extended object header follows the base
// header: 1 selects ObjectHeader, 2 selects ObjectHeader2.
type HeaderVersion uint16

const (
	HeaderVersion1 HeaderVersion = 1
	HeaderVersion2 HeaderVersion = 2
)

// reservedTypes lists tags that decode to a silent skip rather than either
// a named event or an UNKNOWN_TYPE error (spec: "Tags labelled Reserved*
// decode to skip").
var reservedTypes = map[ObjectType]struct{}{
	ObjectTypeReserved52:  {},
	ObjectTypeReserved116: {},
	ObjectTypeReserved117: {},
}

// IsReserved reports whether t is a reserved tag that must be silently
// skipped on read rather than treated as an error or dispatched to a
// decoder.
func IsReserved(t ObjectType) bool {
	_, ok := reservedTypes[t]
	return ok
}
