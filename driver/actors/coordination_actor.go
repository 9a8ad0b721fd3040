package actors

import (
	"log"
	"math/rand"
	"time"

	"backprop/messages"
	"backprop/training"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const defaultTimeout = time.Minute

type CoordinationActor struct {
	loadingActor *actor.PID
	networkActor *actor.PID
}

func NewCoordinationActor() actor.Actor {
	return &CoordinationActor{}
}

// CoordinationProps returns the props of a coordination actor whose children are stopped
// when they fail.
func CoordinationProps() *actor.Props {
	decider := func(reason interface{}) actor.Directive {
		log.Println("handling failure for child:", reason)
		return actor.StopDirective
	}
	supervisor := actor.NewOneForOneStrategy(20, 1000, decider)
	return actor.PropsFromProducer(NewCoordinationActor, actor.WithSupervisor(supervisor))
}

func (state *CoordinationActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *messages.RunPipeline:
		log.Println("Coordination Actor started:", context.Self().String())
		result, err := state.run(context, msg)
		state.stopChildren(context)
		if err != nil {
			log.Println("pipeline failed:", err)
			context.Respond(&messages.Failed{Err: err})
			return
		}
		context.Respond(result)

	case *actor.Stopped:
		log.Println("Coordination Actor stopped:", context.Self().String())
	}
}

func (state *CoordinationActor) run(context actor.Context, msg *messages.RunPipeline) (*messages.PipelineResult, error) {
	timeout := msg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	state.loadingActor = context.Spawn(actor.PropsFromProducer(newLoadingActor))
	reply, err := request(context, state.loadingActor, &messages.LoadDataSets{
		TrainPath:  msg.TrainPath,
		TestPath:   msg.TestPath,
		SplitRatio: msg.SplitRatio,
		Seed:       msg.Seed,
	}, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "load data sets")
	}
	sets, ok := reply.(*messages.DataSets)
	if !ok {
		return nil, errors.Errorf("load data sets: unexpected reply %T", reply)
	}
	if len(sets.Training) == 0 {
		return nil, training.ErrEmptyTrainingSet
	}

	hidden, output, err := initialWeights(msg, len(sets.Training[0].Attributes), len(sets.Training[0].ClassValues))
	if err != nil {
		return nil, err
	}
	network, err := training.New(sets.Training, msg.HiddenCount, msg.Config, hidden, output)
	if err != nil {
		return nil, err
	}
	log.Printf("training %d instances for %d epochs, %d hidden nodes", len(sets.Training), msg.Config.Epochs, msg.HiddenCount)

	state.networkActor = context.Spawn(actor.PropsFromProducer(NewNetworkActor(network)))
	reply, err = request(context, state.networkActor, &messages.StartTraining{}, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "train")
	}
	trained, ok := reply.(*messages.TrainingFinished)
	if !ok {
		return nil, errors.Errorf("train: unexpected reply %T", reply)
	}

	reply, err = request(context, state.networkActor, &messages.Evaluate{Instances: sets.Test}, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "evaluate")
	}
	evaluated, ok := reply.(*messages.EvaluationFinished)
	if !ok {
		return nil, errors.Errorf("evaluate: unexpected reply %T", reply)
	}

	return &messages.PipelineResult{
		Evaluation: evaluated.Evaluation,
		Hidden:     trained.Hidden,
		Output:     trained.Output,
	}, nil
}

func (state *CoordinationActor) stopChildren(context actor.Context) {
	for _, pid := range []*actor.PID{state.loadingActor, state.networkActor} {
		if pid != nil {
			context.Stop(pid)
		}
	}
	state.loadingActor, state.networkActor = nil, nil
}

// initialWeights reads the weights file of msg, or draws random weights from its seed.
func initialWeights(msg *messages.RunPipeline, inputCount, outputCount int) (*mat.Dense, *mat.Dense, error) {
	if msg.WeightsPath != "" {
		return training.ReadWeightsFromFile(msg.WeightsPath)
	}
	if msg.HiddenCount <= 0 {
		return nil, nil, errors.Wrapf(training.ErrConfig, "hidden node count %d", msg.HiddenCount)
	}
	rng := rand.New(rand.NewSource(msg.Seed))
	hidden := training.RandomWeights(rng, msg.HiddenCount, inputCount+1)
	output := training.RandomWeights(rng, outputCount, msg.HiddenCount+1)
	return hidden, output, nil
}

// request sends msg to pid and waits for the reply, turning a Failed reply into an error.
func request(context actor.Context, pid *actor.PID, msg interface{}, timeout time.Duration) (interface{}, error) {
	reply, err := context.RequestFuture(pid, msg, timeout).Result()
	if err != nil {
		return nil, err
	}
	if failed, ok := reply.(*messages.Failed); ok {
		return nil, failed.Err
	}
	return reply, nil
}
