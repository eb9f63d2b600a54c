package service

import (
	"errors"
	"reflect"
	"testing"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	log      *[]string
	stopped  int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(*Env) error {
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	f.stopped++
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func newFakes(log *[]string) (*fakeService, *fakeService, *fakeService) {
	store := &fakeService{name: "store", log: log}
	audio := &fakeService{name: "audio", log: log}
	spectator := &fakeService{name: "spectator", deps: []string{"store"}, log: log}
	return store, audio, spectator
}

func TestHubOrdersByDependency(t *testing.T) {
	var log []string
	store, audio, spectator := newFakes(&log)

	h := NewHub()
	for _, s := range []Service{spectator, audio, store} {
		if err := h.Register(s); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	if err := h.InitAll(&Env{}); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if err := h.StopAll(); err != nil {
		t.Fatalf("StopAll: %v", err)
	}

	want := []string{
		"init:audio", "init:store", "init:spectator",
		"start:audio", "start:store", "start:spectator",
		"stop:spectator", "stop:store", "stop:audio",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("lifecycle = %v\nwant %v", log, want)
	}
}

func TestHubDuplicateRegister(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "store", log: &log})
	if err := h.Register(&fakeService{name: "store", log: &log}); err == nil {
		t.Error("duplicate register should fail")
	}
}

func TestHubMissingDependency(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "spectator", deps: []string{"store"}, log: &log})
	if err := h.InitAll(&Env{}); err == nil {
		t.Error("missing dependency should fail")
	}
}

func TestHubCycle(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := h.InitAll(&Env{}); err == nil {
		t.Error("cycle should fail")
	}
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	store, audio, spectator := newFakes(&log)
	boom := errors.New("boom")
	spectator.initErr = boom

	h := NewHub()
	h.Register(store)
	h.Register(audio)
	h.Register(spectator)

	err := h.InitAll(&Env{})
	if !errors.Is(err, boom) {
		t.Fatalf("InitAll = %v, want wrapped boom", err)
	}
	if store.stopped != 1 || audio.stopped != 1 {
		t.Errorf("rollback stops: store=%d audio=%d", store.stopped, audio.stopped)
	}
	if spectator.stopped != 0 {
		t.Error("failed service should not be stopped")
	}
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	store, audio, spectator := newFakes(&log)
	spectator.startErr = errors.New("listen failed")

	h := NewHub()
	h.Register(store)
	h.Register(audio)
	h.Register(spectator)

	h.InitAll(&Env{})
	if err := h.StartAll(); err == nil {
		t.Fatal("StartAll should fail")
	}
	if store.stopped != 1 || audio.stopped != 1 {
		t.Errorf("rollback stops: store=%d audio=%d", store.stopped, audio.stopped)
	}
}

func TestMustGet(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "store", log: &log})

	if got := MustGet[*fakeService](h, "store"); got.name != "store" {
		t.Errorf("MustGet = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on missing service should panic")
		}
	}()
	MustGet[*fakeService](h, "audio")
}
