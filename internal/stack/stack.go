// Package stack provides a simple LIFO stack
package stack

// Stack is a LIFO stack. The zero value is an empty stack ready to use.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes the last n items (1 if n is not given)
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	if nn <= 0 {
		return
	}
	if nn > s.Len() {
		nn = s.Len()
	}

	var zero T
	for i := s.Len() - nn; i < s.Len(); i++ {
		(*s)[i] = zero
	}
	*s = (*s)[:s.Len()-nn]

	if c := cap(*s); c > 20 && c > s.Len()*2 {
		s.realloc()
	}
}

// Peek returns the last item, and false if the stack is empty
func (s Stack[T]) Peek() (T, bool) {
	if s.Len() == 0 {
		var zero T
		return zero, false
	}
	return s[s.Len()-1], true
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s *Stack[T]) realloc() {
	*s = append(Stack[T](nil), *s...)
}
