package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// AppTrigger Flags values, per AppTrigger.h.
const (
	AppTriggerSingleTrigger uint16 = 0x0000
	AppTriggerLoggingStart  uint16 = 0x0001
	AppTriggerLoggingStop   uint16 = 0x0002
)

// AppTrigger is a user-defined trigger marker (tag 5).
type AppTrigger struct {
	base
	PreTriggerTime  uint64
	PostTriggerTime uint64
	Channel         uint16
	Flags           uint16
	AppSpecific2    uint32
}

func decodeAppTrigger(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	t := &AppTrigger{base: base{Hdr: hdr, ObjType: format.ObjectTypeAppTrigger}}
	var err error
	if t.PreTriggerTime, err = c.ReadU64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app trigger: preTriggerTime", err)
	}
	if t.PostTriggerTime, err = c.ReadU64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app trigger: postTriggerTime", err)
	}
	if t.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app trigger: channel", err)
	}
	if t.Flags, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app trigger: flags", err)
	}
	if t.AppSpecific2, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app trigger: appSpecific2", err)
	}
	return t, nil
}

func encodeAppTrigger(r Record, c *codec.Cursor) error {
	t := r.(*AppTrigger)
	if err := c.WriteU64(t.PreTriggerTime); err != nil {
		return err
	}
	if err := c.WriteU64(t.PostTriggerTime); err != nil {
		return err
	}
	if err := c.WriteU16(t.Channel); err != nil {
		return err
	}
	if err := c.WriteU16(t.Flags); err != nil {
		return err
	}
	return c.WriteU32(t.AppSpecific2)
}

func sizeAppTrigger(r Record) int { return 8 + 8 + 2 + 2 + 4 }

// EnvironmentVariable kinds, collapsing the four ENV_* tags the real
// format spreads across distinct ObjectType values into one Go type keyed
// by which tag it was read from.
type EnvVarKind uint8

const (
	EnvVarInteger EnvVarKind = iota
	EnvVarDouble
	EnvVarString
	EnvVarData
)

// EnvironmentVariable is a named CAPL/CANoe environment variable update
// (tags 6-9, one per Kind).
type EnvironmentVariable struct {
	base
	Kind     EnvVarKind
	NameLen  uint32
	Name     string
	DataLen  uint32
	Data     []byte
}

func envVarObjectType(k EnvVarKind) format.ObjectType {
	switch k {
	case EnvVarInteger:
		return format.ObjectTypeEnvIntegerVariable
	case EnvVarDouble:
		return format.ObjectTypeEnvDoubleVariable
	case EnvVarString:
		return format.ObjectTypeEnvStringVariable
	default:
		return format.ObjectTypeEnvDataVariable
	}
}

func decodeEnvironmentVariable(kind EnvVarKind) decodeFunc {
	return func(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
		e := &EnvironmentVariable{base: base{Hdr: hdr, ObjType: envVarObjectType(kind)}, Kind: kind}
		var err error
		if e.NameLen, err = c.ReadU32(); err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "environment variable: nameLen", err)
		}
		name, err := c.ReadBytes(int(e.NameLen))
		if err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "environment variable: name", err)
		}
		e.Name = string(name)
		if e.DataLen, err = c.ReadU32(); err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "environment variable: dataLen", err)
		}
		data, err := c.ReadBytes(int(e.DataLen))
		if err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "environment variable: data", err)
		}
		e.Data = make([]byte, len(data))
		copy(e.Data, data)
		return e, nil
	}
}

func encodeEnvironmentVariable(r Record, c *codec.Cursor) error {
	e := r.(*EnvironmentVariable)
	if err := c.WriteU32(uint32(len(e.Name))); err != nil {
		return err
	}
	if err := c.WriteBytes([]byte(e.Name)); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(e.Data))); err != nil {
		return err
	}
	return c.WriteBytes(e.Data)
}

func sizeEnvironmentVariable(r Record) int {
	e := r.(*EnvironmentVariable)
	return 4 + len(e.Name) + 4 + len(e.Data)
}

// AppText is a free-form text annotation (tag 65).
type AppText struct {
	base
	TextLen uint32
	Text    string
}

func decodeAppText(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	t := &AppText{base: base{Hdr: hdr, ObjType: format.ObjectTypeAppText}}
	var err error
	if t.TextLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app text: textLen", err)
	}
	text, err := c.ReadBytes(int(t.TextLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "app text: text", err)
	}
	t.Text = string(text)
	return t, nil
}

func encodeAppText(r Record, c *codec.Cursor) error {
	t := r.(*AppText)
	if err := c.WriteU32(uint32(len(t.Text))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(t.Text))
}

func sizeAppText(r Record) int {
	t := r.(*AppText)
	return 4 + len(t.Text)
}

// SystemVariable is a CANoe system variable update (tag 72).
type SystemVariable struct {
	base
	NameLen uint32
	Name    string
	DataLen uint32
	Data    []byte
}

func decodeSystemVariable(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	s := &SystemVariable{base: base{Hdr: hdr, ObjType: format.ObjectTypeSystemVariable}}
	var err error
	if s.NameLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "system variable: nameLen", err)
	}
	name, err := c.ReadBytes(int(s.NameLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "system variable: name", err)
	}
	s.Name = string(name)
	if s.DataLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "system variable: dataLen", err)
	}
	data, err := c.ReadBytes(int(s.DataLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "system variable: data", err)
	}
	s.Data = make([]byte, len(data))
	copy(s.Data, data)
	return s, nil
}

func encodeSystemVariable(r Record, c *codec.Cursor) error {
	s := r.(*SystemVariable)
	if err := c.WriteU32(uint32(len(s.Name))); err != nil {
		return err
	}
	if err := c.WriteBytes([]byte(s.Name)); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(s.Data))); err != nil {
		return err
	}
	return c.WriteBytes(s.Data)
}

func sizeSystemVariable(r Record) int {
	s := r.(*SystemVariable)
	return 4 + len(s.Name) + 4 + len(s.Data)
}

// EventComment is a free-text comment attached to the log (tag 92).
type EventComment struct {
	base
	CommentedEventType uint32
	TextLen            uint32
	Text               string
}

func decodeEventComment(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &EventComment{base: base{Hdr: hdr, ObjType: format.ObjectTypeEventComment}}
	var err error
	if e.CommentedEventType, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "event comment: commentedEventType", err)
	}
	if e.TextLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "event comment: textLen", err)
	}
	text, err := c.ReadBytes(int(e.TextLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "event comment: text", err)
	}
	e.Text = string(text)
	return e, nil
}

func encodeEventComment(r Record, c *codec.Cursor) error {
	e := r.(*EventComment)
	if err := c.WriteU32(e.CommentedEventType); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(e.Text))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(e.Text))
}

func sizeEventComment(r Record) int {
	e := r.(*EventComment)
	return 4 + 4 + len(e.Text)
}

// GlobalMarker is a user-placed timeline marker (tag 96).
type GlobalMarker struct {
	base
	CommentedEventType uint32
	ForegroundColor    uint32
	BackgroundColor    uint32
	IsRelocatable       uint8
	GroupNameLen       uint32
	GroupName          string
}

func decodeGlobalMarker(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &GlobalMarker{base: base{Hdr: hdr, ObjType: format.ObjectTypeGlobalMarker}}
	var err error
	if m.CommentedEventType, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: commentedEventType", err)
	}
	if m.ForegroundColor, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: foregroundColor", err)
	}
	if m.BackgroundColor, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: backgroundColor", err)
	}
	if m.IsRelocatable, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: isRelocatable", err)
	}
	if m.GroupNameLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: groupNameLen", err)
	}
	name, err := c.ReadBytes(int(m.GroupNameLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "global marker: groupName", err)
	}
	m.GroupName = string(name)
	return m, nil
}

func encodeGlobalMarker(r Record, c *codec.Cursor) error {
	m := r.(*GlobalMarker)
	if err := c.WriteU32(m.CommentedEventType); err != nil {
		return err
	}
	if err := c.WriteU32(m.ForegroundColor); err != nil {
		return err
	}
	if err := c.WriteU32(m.BackgroundColor); err != nil {
		return err
	}
	if err := c.WriteU8(m.IsRelocatable); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(m.GroupName))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(m.GroupName))
}

func sizeGlobalMarker(r Record) int {
	m := r.(*GlobalMarker)
	return 4 + 4 + 4 + 1 + 4 + len(m.GroupName)
}

// SerialEvent is a raw RS232/serial byte transfer record (tag 90).
type SerialEvent struct {
	base
	Channel uint16
	Kind    uint16
	DataLen uint32
	Data    []byte
}

func decodeSerialEvent(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &SerialEvent{base: base{Hdr: hdr, ObjType: format.ObjectTypeSerialEvent}}
	var err error
	if e.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "serial event: channel", err)
	}
	if e.Kind, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "serial event: kind", err)
	}
	if e.DataLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "serial event: dataLen", err)
	}
	data, err := c.ReadBytes(int(e.DataLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "serial event: data", err)
	}
	e.Data = make([]byte, len(data))
	copy(e.Data, data)
	return e, nil
}

func encodeSerialEvent(r Record, c *codec.Cursor) error {
	e := r.(*SerialEvent)
	if err := c.WriteU16(e.Channel); err != nil {
		return err
	}
	if err := c.WriteU16(e.Kind); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(e.Data))); err != nil {
		return err
	}
	return c.WriteBytes(e.Data)
}

func sizeSerialEvent(r Record) int {
	e := r.(*SerialEvent)
	return 2 + 2 + 4 + len(e.Data)
}

// DriverOverrun reports that a driver-level event queue overran (tag 91).
type DriverOverrun struct {
	base
	Channel  uint16
	BusType  uint16
}

func decodeDriverOverrun(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	d := &DriverOverrun{base: base{Hdr: hdr, ObjType: format.ObjectTypeDriverOverrun}}
	var err error
	if d.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "driver overrun: channel", err)
	}
	if d.BusType, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "driver overrun: busType", err)
	}
	return d, nil
}

func encodeDriverOverrun(r Record, c *codec.Cursor) error {
	d := r.(*DriverOverrun)
	if err := c.WriteU16(d.Channel); err != nil {
		return err
	}
	return c.WriteU16(d.BusType)
}

func sizeDriverOverrun(r Record) int { return 2 + 2 }

// TestStructure marks test-report boundaries emitted by CANoe test modules
// (tag 118).
type TestStructure struct {
	base
	Kind    uint32
	TextLen uint32
	Text    string
}

func decodeTestStructure(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	t := &TestStructure{base: base{Hdr: hdr, ObjType: format.ObjectTypeTestStructure}}
	var err error
	if t.Kind, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "test structure: kind", err)
	}
	if t.TextLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "test structure: textLen", err)
	}
	text, err := c.ReadBytes(int(t.TextLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "test structure: text", err)
	}
	t.Text = string(text)
	return t, nil
}

func encodeTestStructure(r Record, c *codec.Cursor) error {
	t := r.(*TestStructure)
	if err := c.WriteU32(t.Kind); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(t.Text))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(t.Text))
}

func sizeTestStructure(r Record) int {
	t := r.(*TestStructure)
	return 4 + 4 + len(t.Text)
}

// DiagRequestInterpretation annotates a diagnostic request with its
// decoded interpretation (tag 119).
type DiagRequestInterpretation struct {
	base
	EcuQualifierLen uint32
	EcuQualifier    string
	TextLen         uint32
	Text            string
}

func decodeDiagRequestInterpretation(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	d := &DiagRequestInterpretation{base: base{Hdr: hdr, ObjType: format.ObjectTypeDiagRequestInterp}}
	var err error
	if d.EcuQualifierLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "diag request interpretation: ecuQualifierLen", err)
	}
	qualifier, err := c.ReadBytes(int(d.EcuQualifierLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "diag request interpretation: ecuQualifier", err)
	}
	d.EcuQualifier = string(qualifier)
	if d.TextLen, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "diag request interpretation: textLen", err)
	}
	text, err := c.ReadBytes(int(d.TextLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "diag request interpretation: text", err)
	}
	d.Text = string(text)
	return d, nil
}

func encodeDiagRequestInterpretation(r Record, c *codec.Cursor) error {
	d := r.(*DiagRequestInterpretation)
	if err := c.WriteU32(uint32(len(d.EcuQualifier))); err != nil {
		return err
	}
	if err := c.WriteBytes([]byte(d.EcuQualifier)); err != nil {
		return err
	}
	if err := c.WriteU32(uint32(len(d.Text))); err != nil {
		return err
	}
	return c.WriteBytes([]byte(d.Text))
}

func sizeDiagRequestInterpretation(r Record) int {
	d := r.(*DiagRequestInterpretation)
	return 4 + len(d.EcuQualifier) + 4 + len(d.Text)
}

// RealtimeClock correlates a PC wall-clock time with the log's internal
// timebase (tag 51).
type RealtimeClock struct {
	base
	TimeNs   uint64
	Reserved uint32
}

func decodeRealtimeClock(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	rc := &RealtimeClock{base: base{Hdr: hdr, ObjType: format.ObjectTypeRealtimeClock}}
	var err error
	if rc.TimeNs, err = c.ReadU64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "realtime clock: timeNs", err)
	}
	if rc.Reserved, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "realtime clock: reserved", err)
	}
	return rc, nil
}

func encodeRealtimeClock(r Record, c *codec.Cursor) error {
	rc := r.(*RealtimeClock)
	if err := c.WriteU64(rc.TimeNs); err != nil {
		return err
	}
	return c.WriteU32(rc.Reserved)
}

func sizeRealtimeClock(r Record) int { return 8 + 4 }

func init() {
	register(format.ObjectTypeAppTrigger, entry{decode: decodeAppTrigger, encode: encodeAppTrigger, size: sizeAppTrigger})
	register(format.ObjectTypeEnvIntegerVariable, entry{decode: decodeEnvironmentVariable(EnvVarInteger), encode: encodeEnvironmentVariable, size: sizeEnvironmentVariable})
	register(format.ObjectTypeEnvDoubleVariable, entry{decode: decodeEnvironmentVariable(EnvVarDouble), encode: encodeEnvironmentVariable, size: sizeEnvironmentVariable})
	register(format.ObjectTypeEnvStringVariable, entry{decode: decodeEnvironmentVariable(EnvVarString), encode: encodeEnvironmentVariable, size: sizeEnvironmentVariable})
	register(format.ObjectTypeEnvDataVariable, entry{decode: decodeEnvironmentVariable(EnvVarData), encode: encodeEnvironmentVariable, size: sizeEnvironmentVariable})
	register(format.ObjectTypeAppText, entry{decode: decodeAppText, encode: encodeAppText, size: sizeAppText})
	register(format.ObjectTypeSystemVariable, entry{decode: decodeSystemVariable, encode: encodeSystemVariable, size: sizeSystemVariable})
	register(format.ObjectTypeEventComment, entry{decode: decodeEventComment, encode: encodeEventComment, size: sizeEventComment})
	register(format.ObjectTypeGlobalMarker, entry{decode: decodeGlobalMarker, encode: encodeGlobalMarker, size: sizeGlobalMarker})
	register(format.ObjectTypeSerialEvent, entry{decode: decodeSerialEvent, encode: encodeSerialEvent, size: sizeSerialEvent})
	register(format.ObjectTypeDriverOverrun, entry{decode: decodeDriverOverrun, encode: encodeDriverOverrun, size: sizeDriverOverrun})
	register(format.ObjectTypeTestStructure, entry{decode: decodeTestStructure, encode: encodeTestStructure, size: sizeTestStructure})
	register(format.ObjectTypeDiagRequestInterp, entry{decode: decodeDiagRequestInterpretation, encode: encodeDiagRequestInterpretation, size: sizeDiagRequestInterpretation})
	register(format.ObjectTypeRealtimeClock, entry{decode: decodeRealtimeClock, encode: encodeRealtimeClock, size: sizeRealtimeClock})
}
