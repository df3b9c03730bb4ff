package domain

// HiscoreLiteResponse é o payload do endpoint index_lite.json do hiscore
// oficial: skills e atividades em listas planas, na ordem do jogo.
type HiscoreLiteResponse struct {
	Skills     []LiteSkill    `json:"skills"`
	Activities []LiteActivity `json:"activities"`
}

type LiteSkill struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rank  int64  `json:"rank"`
	Level int64  `json:"level"`
	XP    int64  `json:"xp"`
}

// LiteActivity cobre tudo que não é skill: minigames, clue scrolls e bosses.
// O hiscore não distingue as categorias; a separação é feita por nome.
type LiteActivity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rank  int64  `json:"rank"`
	Score int64  `json:"score"`
}
