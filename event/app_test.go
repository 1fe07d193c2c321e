package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestAppTrigger_RoundTrip(t *testing.T) {
	tr := &AppTrigger{
		base:            base{ObjType: format.ObjectTypeAppTrigger},
		PreTriggerTime:  1000,
		PostTriggerTime: 2000,
		Channel:         1,
		Flags:           AppTriggerLoggingStart,
		AppSpecific2:    7,
	}
	got := roundTrip(t, tr).(*AppTrigger)
	require.Equal(t, tr.PreTriggerTime, got.PreTriggerTime)
	require.Equal(t, tr.PostTriggerTime, got.PostTriggerTime)
	require.Equal(t, tr.Channel, got.Channel)
	require.Equal(t, tr.Flags, got.Flags)
	require.Equal(t, tr.AppSpecific2, got.AppSpecific2)
}

func TestEnvironmentVariable_RoundTrip(t *testing.T) {
	for _, kind := range []EnvVarKind{EnvVarInteger, EnvVarDouble, EnvVarString, EnvVarData} {
		e := &EnvironmentVariable{
			base: base{ObjType: envVarObjectType(kind)},
			Kind: kind,
			Name: "myVar",
			Data: []byte{1, 2, 3, 4},
		}
		got := roundTrip(t, e).(*EnvironmentVariable)
		require.Equal(t, e.Name, got.Name)
		require.Equal(t, e.Data, got.Data)
	}
}

func TestAppText_RoundTrip(t *testing.T) {
	tx := &AppText{base: base{ObjType: format.ObjectTypeAppText}, Text: "hello world"}
	got := roundTrip(t, tx).(*AppText)
	require.Equal(t, tx.Text, got.Text)
}

func TestSystemVariable_RoundTrip(t *testing.T) {
	s := &SystemVariable{
		base: base{ObjType: format.ObjectTypeSystemVariable},
		Name: "sys::var",
		Data: []byte{9, 9},
	}
	got := roundTrip(t, s).(*SystemVariable)
	require.Equal(t, s.Name, got.Name)
	require.Equal(t, s.Data, got.Data)
}

func TestEventComment_RoundTrip(t *testing.T) {
	e := &EventComment{
		base:                base{ObjType: format.ObjectTypeEventComment},
		CommentedEventType:  uint32(format.ObjectTypeCanMessage),
		Text:                "note",
	}
	got := roundTrip(t, e).(*EventComment)
	require.Equal(t, e.CommentedEventType, got.CommentedEventType)
	require.Equal(t, e.Text, got.Text)
}

func TestGlobalMarker_RoundTrip(t *testing.T) {
	m := &GlobalMarker{
		base:                base{ObjType: format.ObjectTypeGlobalMarker},
		CommentedEventType:  0,
		ForegroundColor:     0xFF0000,
		BackgroundColor:     0x00FF00,
		IsRelocatable:       1,
		GroupName:           "markers",
	}
	got := roundTrip(t, m).(*GlobalMarker)
	require.Equal(t, m.ForegroundColor, got.ForegroundColor)
	require.Equal(t, m.BackgroundColor, got.BackgroundColor)
	require.Equal(t, m.IsRelocatable, got.IsRelocatable)
	require.Equal(t, m.GroupName, got.GroupName)
}

func TestSerialEvent_RoundTrip(t *testing.T) {
	e := &SerialEvent{
		base:    base{ObjType: format.ObjectTypeSerialEvent},
		Channel: 1,
		Kind:    2,
		Data:    []byte("AT\r\n"),
	}
	got := roundTrip(t, e).(*SerialEvent)
	require.Equal(t, e.Channel, got.Channel)
	require.Equal(t, e.Kind, got.Kind)
	require.Equal(t, e.Data, got.Data)
}

func TestDriverOverrun_RoundTrip(t *testing.T) {
	d := &DriverOverrun{base: base{ObjType: format.ObjectTypeDriverOverrun}, Channel: 1, BusType: 2}
	got := roundTrip(t, d).(*DriverOverrun)
	require.Equal(t, d.Channel, got.Channel)
	require.Equal(t, d.BusType, got.BusType)
}

func TestTestStructure_RoundTrip(t *testing.T) {
	ts := &TestStructure{base: base{ObjType: format.ObjectTypeTestStructure}, Kind: 1, Text: "TestCase1"}
	got := roundTrip(t, ts).(*TestStructure)
	require.Equal(t, ts.Kind, got.Kind)
	require.Equal(t, ts.Text, got.Text)
}

func TestDiagRequestInterpretation_RoundTrip(t *testing.T) {
	d := &DiagRequestInterpretation{
		base:         base{ObjType: format.ObjectTypeDiagRequestInterp},
		EcuQualifier: "ECU1",
		Text:         "ReadDataByIdentifier",
	}
	got := roundTrip(t, d).(*DiagRequestInterpretation)
	require.Equal(t, d.EcuQualifier, got.EcuQualifier)
	require.Equal(t, d.Text, got.Text)
}

func TestRealtimeClock_RoundTrip(t *testing.T) {
	rc := &RealtimeClock{base: base{ObjType: format.ObjectTypeRealtimeClock}, TimeNs: 123456789}
	got := roundTrip(t, rc).(*RealtimeClock)
	require.Equal(t, rc.TimeNs, got.TimeNs)
}
