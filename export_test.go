package idtoken

// ResetGenerator forgets the selected generator so that tests can select
// another one.
func ResetGenerator() {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	generator = nil
	generatorInstantiated.Store(false)
}
