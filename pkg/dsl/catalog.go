package dsl

import "strings"

// =============================================================================
// Service Catalog - Static Lookup Data
// =============================================================================

// Service describes a known service kind: canonical name, icon, and the
// visual attributes a node of that kind carries. The catalog is plain
// lookup data so classification stays branch-free and testable.
type Service struct {
	Name     string // canonical display name
	Icon     string // DSL icon identifier
	Color    string
	Category string
}

// GenericService is the fallback for labels and icons the catalog does
// not know. The literal label becomes the display override.
var GenericService = Service{Name: "Service", Icon: "server", Color: "#5A6B86", Category: "general"}

// Services is the catalog of known service kinds.
var Services = []Service{
	{Name: "EC2", Icon: "aws-ec2", Color: "#ED7100", Category: "compute"},
	{Name: "Lambda", Icon: "aws-lambda", Color: "#ED7100", Category: "compute"},
	{Name: "ECS", Icon: "aws-ecs", Color: "#ED7100", Category: "compute"},
	{Name: "EKS", Icon: "aws-eks", Color: "#ED7100", Category: "compute"},
	{Name: "S3", Icon: "aws-s3", Color: "#7AA116", Category: "storage"},
	{Name: "EBS", Icon: "aws-ebs", Color: "#7AA116", Category: "storage"},
	{Name: "RDS", Icon: "aws-rds", Color: "#527FFF", Category: "database"},
	{Name: "DynamoDB", Icon: "aws-dynamodb", Color: "#527FFF", Category: "database"},
	{Name: "ElastiCache", Icon: "aws-elasticache", Color: "#527FFF", Category: "database"},
	{Name: "Redshift", Icon: "aws-redshift", Color: "#527FFF", Category: "database"},
	{Name: "API Gateway", Icon: "aws-api-gateway", Color: "#E7157B", Category: "networking"},
	{Name: "CloudFront", Icon: "aws-cloudfront", Color: "#8C4FFF", Category: "networking"},
	{Name: "Load Balancer", Icon: "aws-elb", Color: "#8C4FFF", Category: "networking"},
	{Name: "Route 53", Icon: "aws-route-53", Color: "#8C4FFF", Category: "networking"},
	{Name: "SQS", Icon: "aws-sqs", Color: "#E7157B", Category: "messaging"},
	{Name: "SNS", Icon: "aws-sns", Color: "#E7157B", Category: "messaging"},
	{Name: "Kinesis", Icon: "aws-kinesis", Color: "#8C4FFF", Category: "messaging"},
	{Name: "CloudWatch", Icon: "aws-cloudwatch", Color: "#E7157B", Category: "management"},
	{Name: "IAM", Icon: "aws-iam", Color: "#DD344C", Category: "security"},
	{Name: "Cognito", Icon: "aws-cognito", Color: "#DD344C", Category: "security"},
	{Name: "PostgreSQL", Icon: "postgresql", Color: "#336791", Category: "database"},
	{Name: "MySQL", Icon: "mysql", Color: "#4479A1", Category: "database"},
	{Name: "MongoDB", Icon: "mongodb", Color: "#47A248", Category: "database"},
	{Name: "Redis", Icon: "redis", Color: "#DC382D", Category: "database"},
	{Name: "Kafka", Icon: "kafka", Color: "#231F20", Category: "messaging"},
	{Name: "Kubernetes", Icon: "kubernetes", Color: "#326CE5", Category: "compute"},
	{Name: "Docker", Icon: "docker", Color: "#2496ED", Category: "compute"},
	{Name: "Nginx", Icon: "nginx", Color: "#009639", Category: "networking"},
	{Name: "GitHub", Icon: "github", Color: "#181717", Category: "tooling"},
	{Name: "User", Icon: "user", Color: "#5A6B86", Category: "actor"},
	{Name: "Internet", Icon: "globe", Color: "#5A6B86", Category: "actor"},
	{Name: "Server", Icon: "server", Color: "#5A6B86", Category: "general"},
	{Name: "Database", Icon: "database", Color: "#5A6B86", Category: "database"},
}

var (
	serviceByLabel = make(map[string]*Service, len(Services))
	serviceByIcon  = make(map[string]*Service, len(Services))
)

func init() {
	for i := range Services {
		s := &Services[i]
		serviceByLabel[strings.ToLower(s.Name)] = s
		serviceByIcon[s.Icon] = s
	}
}

// ClassifyService resolves a DSL node line to a service kind: the label
// text is checked against the label table first, then the icon name
// against the icon table, then the generic fallback.
func ClassifyService(label, icon string) Service {
	if s, ok := serviceByLabel[strings.ToLower(strings.TrimSpace(label))]; ok {
		return *s
	}
	if s, ok := serviceByIcon[icon]; ok {
		return *s
	}
	return GenericService
}

// IconForService maps a canonical service name to its DSL icon, falling
// back to the generic icon when the name is unmapped.
func IconForService(name string) string {
	if s, ok := serviceByLabel[strings.ToLower(name)]; ok {
		return s.Icon
	}
	return GenericService.Icon
}

// =============================================================================
// Container Catalog
// =============================================================================

// ContainerKind describes a categorical container: the label substrings
// that identify it and the visual attributes a matching group carries.
type ContainerKind struct {
	Kind     string
	Keywords []string // case-insensitive substring matches, first kind wins
	Icon     string
	Color    string
	Border   string
}

// GenericContainer is the fallback when no keyword matches.
var GenericContainer = ContainerKind{Kind: "group", Icon: "folder", Color: "#5A6B86", Border: "solid"}

// ContainerKinds is checked in order; the first keyword match wins.
var ContainerKinds = []ContainerKind{
	{Kind: "vpc", Keywords: []string{"vpc"}, Icon: "aws-vpc", Color: "#8C4FFF", Border: "dashed"},
	{Kind: "subnet", Keywords: []string{"subnet"}, Icon: "aws-subnet", Color: "#7AA116", Border: "dashed"},
	{Kind: "cloud", Keywords: []string{"cloud", "aws"}, Icon: "aws-cloud", Color: "#232F3E", Border: "solid"},
	{Kind: "github", Keywords: []string{"github"}, Icon: "github", Color: "#181717", Border: "solid"},
	{Kind: "onprem", Keywords: []string{"on-premises", "data center", "corporate"}, Icon: "building", Color: "#7D8998", Border: "solid"},
	{Kind: "rack", Keywords: []string{"rack"}, Icon: "rack", Color: "#7D8998", Border: "solid"},
	{Kind: "zone", Keywords: []string{"zone"}, Icon: "zone", Color: "#00A4A6", Border: "dotted"},
}

// ClassifyContainer infers a container kind from a group label by
// case-insensitive substring match, defaulting to GenericContainer.
func ClassifyContainer(label string) ContainerKind {
	lower := strings.ToLower(label)
	for _, k := range ContainerKinds {
		for _, kw := range k.Keywords {
			if strings.Contains(lower, kw) {
				return k
			}
		}
	}
	return GenericContainer
}

// KnownIconPrefixes are icon-name prefixes characteristic of DSL text,
// used by format detection.
var KnownIconPrefixes = []string{"aws-", "gcp-", "azure-"}
