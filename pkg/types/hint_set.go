package types

// HintSet 按结构去重的提示集合，保持首次插入顺序
//
// 零值可直接使用。HintSet 不是并发安全的。
type HintSet struct {
	index map[string]int
	hints []Hint
}

// NewHintSet 创建提示集合并加入给定提示
func NewHintSet(hints ...Hint) *HintSet {
	s := &HintSet{}
	for _, h := range hints {
		s.Add(h)
	}
	return s
}

// Add 加入提示，已存在（结构相等）或为 nil 时返回 false
func (s *HintSet) Add(h Hint) bool {
	if h == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	key := h.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.hints)
	s.hints = append(s.hints, h)
	return true
}

// Contains 判断集合中是否存在结构相等的提示
func (s *HintSet) Contains(h Hint) bool {
	if h == nil || s.index == nil {
		return false
	}
	_, ok := s.index[h.Key()]
	return ok
}

// Len 返回集合大小
func (s *HintSet) Len() int {
	return len(s.hints)
}

// Hints 按插入顺序返回集合内容的副本
func (s *HintSet) Hints() []Hint {
	cp := make([]Hint, len(s.hints))
	copy(cp, s.hints)
	return cp
}
