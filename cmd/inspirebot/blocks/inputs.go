package blocks

// Inputs holds the per-instance values typed or selected for block slots.
// Entries are keyed by instance id and slot index; a slot that was never set
// is absent rather than empty, so rendering can apply its default.
type Inputs struct {
	generic map[string]map[int]string
	pins    map[string]map[int]string
	wait    map[string]string
}

// NewInputs returns empty input stores.
func NewInputs() *Inputs {
	return &Inputs{
		generic: make(map[string]map[int]string),
		pins:    make(map[string]map[int]string),
		wait:    make(map[string]string),
	}
}

// SetPin records the value for the slot-th pin placeholder of an instance.
// Negative slots are ignored.
func (in *Inputs) SetPin(instanceID string, slot int, value string) {
	upsert(in.pins, instanceID, slot, value)
}

// SetGeneric records the value for the slot-th generic placeholder of an instance.
// Negative slots are ignored.
func (in *Inputs) SetGeneric(instanceID string, slot int, value string) {
	upsert(in.generic, instanceID, slot, value)
}

// SetWait records the milliseconds value of a wait block.
func (in *Inputs) SetWait(instanceID, value string) {
	in.wait[instanceID] = value
}

// Pin returns the recorded pin value and whether it was set.
func (in *Inputs) Pin(instanceID string, slot int) (string, bool) {
	v, ok := in.pins[instanceID][slot]
	return v, ok
}

// Generic returns the recorded generic value and whether it was set.
func (in *Inputs) Generic(instanceID string, slot int) (string, bool) {
	v, ok := in.generic[instanceID][slot]
	return v, ok
}

// Wait returns the recorded wait value and whether it was set.
func (in *Inputs) Wait(instanceID string) (string, bool) {
	v, ok := in.wait[instanceID]
	return v, ok
}

// forget drops every entry recorded for an instance.
func (in *Inputs) forget(instanceID string) {
	delete(in.pins, instanceID)
	delete(in.generic, instanceID)
	delete(in.wait, instanceID)
}

func (in *Inputs) reset() {
	in.generic = make(map[string]map[int]string)
	in.pins = make(map[string]map[int]string)
	in.wait = make(map[string]string)
}

func upsert(store map[string]map[int]string, id string, slot int, value string) {
	if slot < 0 {
		return
	}
	slots, ok := store[id]
	if !ok {
		slots = make(map[int]string)
		store[id] = slots
	}
	slots[slot] = value
}
