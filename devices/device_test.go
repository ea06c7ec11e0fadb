package devices

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type testDevice struct {
	id       ID
	startErr error
	order    *[]string
}

func (d *testDevice) ID() ID { return d.id }

func (d *testDevice) Startup() error {
	*d.order = append(*d.order, "start "+d.id.String())
	return d.startErr
}

func (d *testDevice) Shutdown() error {
	*d.order = append(*d.order, "stop "+d.id.String())
	return nil
}

func TestID(t *testing.T) {
	id := NewID(0xfffe, 0x0002)

	if id.Manufacturer() != 0xfffe {
		t.Fatalf("want manufacturer fffe, have %04x", id.Manufacturer())
	}
	if id.Serial() != 0x0002 {
		t.Fatalf("want serial 0002, have %04x", id.Serial())
	}
	if have := id.String(); have != "fffe:0002" {
		t.Fatalf("want fffe:0002, have %s", have)
	}
}

func TestMapConnect(t *testing.T) {
	var order []string
	var dm Map

	a := &testDevice{id: NewID(0xfffe, 1), order: &order}
	b := &testDevice{id: NewID(0xfffe, 2), order: &order}

	if !dm.Connect(a) || !dm.Connect(b) {
		t.Fatal("Connect failed for distinct devices")
	}
	if dm.Connect(&testDevice{id: a.id, order: &order}) {
		t.Fatal("Connect accepted a duplicate id")
	}
	if dm.Find(b.id) != 1 {
		t.Fatalf("want b at index 1, have %d", dm.Find(b.id))
	}
	if dm.Find(NewID(1, 1)) != -1 {
		t.Fatal("Find returned an index for an unknown id")
	}
}

func TestMapStartupShutdown(t *testing.T) {
	var order []string
	var dm Map

	failure := errors.New("no window")
	dm.Connect(&testDevice{id: NewID(0xfffe, 1), order: &order, startErr: failure})
	dm.Connect(&testDevice{id: NewID(0xfffe, 2), order: &order})

	err := dm.Startup()
	if err == nil {
		t.Fatal("expected startup error")
	}

	set, ok := err.(ErrorSet)
	if !ok || set.Len() != 1 {
		t.Fatalf("want ErrorSet with one entry, have %#v", err)
	}
	if errors.Cause(set[0]) != failure {
		t.Fatalf("want cause %v, have %v", failure, errors.Cause(set[0]))
	}
	if !strings.HasPrefix(set[0].Error(), "fffe:0001") {
		t.Fatalf("error should name the device: %v", set[0])
	}

	if err := dm.Shutdown(); err != nil {
		t.Fatalf("Shutdown failure: %v", err)
	}

	want := []string{"start fffe:0001", "start fffe:0002", "stop fffe:0002", "stop fffe:0001"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("call order mismatch:\nwant: %v\nhave: %v", want, order)
	}
}

func TestErrorSet(t *testing.T) {
	var set ErrorSet
	if set.Err() != nil {
		t.Fatal("empty set should yield nil error")
	}

	set.Append(nil, errors.New("a"), nil, errors.New("b"))
	if set.Len() != 2 {
		t.Fatalf("want 2 errors, have %d", set.Len())
	}
	if have := set.Err().Error(); have != "a\nb" {
		t.Fatalf("want %q, have %q", "a\nb", have)
	}
}
