package capture

import "os"

func writeStub(path string) error {
	return os.WriteFile(path, []byte("stub"), 0o644)
}
