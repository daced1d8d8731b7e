//go:build !linux

package platform

func listXattrs(string) ([]string, bool) {
	return nil, false
}
