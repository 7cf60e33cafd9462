package admin

type AdminServicePort interface {
	Export(resources []string, format ExportFormat) (contentType, filename string, data []byte, err error)
}

var _ AdminServicePort = (*AdminService)(nil)
