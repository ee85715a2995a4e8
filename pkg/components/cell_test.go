package components

import "testing"

func TestPlantCellSlots(t *testing.T) {
	c := EmptyCell()
	if !c.IsEmpty() {
		t.Fatal("Expected empty cell")
	}

	c.Base, c.Content, c.Pumpkin = 1, 2, 3
	slots := c.Slots()
	want := []int{3, 2, 1}
	if len(slots) != len(want) {
		t.Fatalf("Expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("Expected slot %d = %d, got %d", i, want[i], slots[i])
		}
	}

	if !c.ClearID(2) || c.Contains(2) {
		t.Error("Expected content slot to be cleared")
	}
	if c.ClearID(9) {
		t.Error("Expected no slot cleared for unknown id")
	}
}
