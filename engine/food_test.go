package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
	"golang.org/x/exp/rand"
)

func fullBoard(size int) []core.Position {
	cells := make([]core.Position, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cells = append(cells, core.Pos(x, y))
		}
	}
	return cells
}

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	snake := fullBoard(4)[:10]

	for i := 0; i < 200; i++ {
		p, ok := placeFood(rng, 4, snake)
		if !ok {
			t.Fatal("placeFood reported a full board")
		}
		if !p.InBounds(4) {
			t.Fatalf("food %v out of bounds", p)
		}
		for _, s := range snake {
			if s == p {
				t.Fatalf("food %v placed on snake", p)
			}
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cells := fullBoard(3)
	free := cells[4]
	snake := append(append([]core.Position{}, cells[:4]...), cells[5:]...)

	p, ok := placeFood(rng, 3, snake)
	if !ok || p != free {
		t.Errorf("placeFood = %v,%v want %v,true", p, ok, free)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := placeFood(rng, 3, fullBoard(3)); ok {
		t.Error("placeFood on a full board should fail")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = 4
	e, scores := newTestEngine(t, cfg)

	// Snake covers every cell but the food, head right next to it
	food := core.Pos(3, 3)
	snake := []core.Position{core.Pos(2, 3)}
	for _, c := range fullBoard(4) {
		if c != food && c != snake[0] {
			snake = append(snake, c)
		}
	}
	e.state = GameState{Food: food, Snake: snake}
	e.direction = core.Right
	e.growBudget = len(snake) + 1

	if e.tick() {
		t.Fatal("eating the last free cell should end the game")
	}
	if len(*scores) != 1 || (*scores)[0] != 16-4 {
		t.Errorf("scores = %v, want [12]", *scores)
	}
}
