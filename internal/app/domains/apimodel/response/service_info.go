package response

// ServiceInfo 服务首页信息
type ServiceInfo struct {
	Name    string `json:"name" example:"Account REST API Service"`
	Version string `json:"version" example:"1.0"`
	URL     string `json:"url" example:"/api/v1/accounts"`
}
